package main

import (
	"go.uber.org/fx"

	"github.com/Additional-Code/storehouse/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
