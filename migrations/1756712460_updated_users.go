package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Adds the profile fields the app reads and writes on users: the role the
// login flow branches on and the registration timestamp in epoch millis.
func init() {
	m.Register(func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}

		collection.Fields.Add(&core.TextField{
			Id:   "text_user_role",
			Name: "role",
		})
		collection.Fields.Add(&core.NumberField{
			Id:      "number_user_createdat",
			Name:    "createdAt",
			OnlyInt: true,
		})

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}

		collection.Fields.RemoveByName("role")
		collection.Fields.RemoveByName("createdAt")

		return app.Save(collection)
	})
}
