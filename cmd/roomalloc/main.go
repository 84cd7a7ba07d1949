package main

import (
	"RoomAllocator/internal/bootstrap"
	"RoomAllocator/internal/config"
	"RoomAllocator/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		config.MongoModule,
		config.MailerModule,
		pkg.RoomAllocModule,
	)

	app.Run()
}
