package main

import (
	"flag"

	"kickconnect.net/configs"
	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/database"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run the schema migrations")
	seedFlag := flag.Bool("seed", false, "seed the reference tables and system login")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
