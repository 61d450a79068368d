// Command gen regenerates the type-safe gorm query helpers for the persistence models.
package main

import (
	"weev/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.BrandModel{},
		model.ProductModel{},
		model.RewardTemplateModel{},
		model.ActivationModel{},
		model.RewardGrantModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}
