// Command devserver runs an embedded PocketBase backend with the evently
// collections, so the client can be exercised end-to-end locally without a
// hosted instance.
package main

import (
	"log"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"

	_ "evently/migrations"
)

func main() {
	app := pocketbase.New()

	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		logEventCount(e.App)
		return e.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func logEventCount(app core.App) {
	var records []dbx.NullStringMap
	if err := app.DB().NewQuery("SELECT id FROM events").All(&records); err != nil {
		log.Printf("Error counting events: %v", err)
		return
	}
	log.Printf("Dev backend ready, %d events stored", len(records))
}
