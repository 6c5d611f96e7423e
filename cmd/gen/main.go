// Command gen regenerates the typed gorm query helpers for the persistence models.
package main

import (
	"authgate/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.UserModel{})

	g.Execute()
}
