// File: cmd/service/main.go
// @title        Ride Auth API
// @version      1.0
// @description  乘客與司機的註冊、登入 API
// @host         localhost:3002
// @BasePath     /api/auth
package main

import (
	"log"
	"os"
)

var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
