package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/theDrake/pebblequest-sub000/pkg/utils"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "now":
		fmt.Println(time.Now().UnixNano())
	case "hash":
		if len(os.Args) < 3 {
			fmt.Println("Usage: seedutil hash <token>")
			return
		}
		fmt.Println(utils.StringToSeed(os.Args[2]))
	case "label":
		if len(os.Args) < 3 {
			fmt.Println("Usage: seedutil label <seed>")
			return
		}
		seed, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid seed: %v\n", err)
			return
		}
		fmt.Println(utils.SeedLabel(seed))
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Seed Utility - работа с сидами квестов
Commands:
  now            - сид из текущего времени (как делает сервер по умолчанию)
  hash <token>   - детерминированный сид из токена игрока
  label <seed>   - короткая hex-метка сида (та, что в уведомлениях)`)
}
