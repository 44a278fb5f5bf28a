package main

import (
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ServiceModel{},
		model.HowDoesItWorkModel{},
		model.IncludeModel{},
		model.ExcludeModel{},
		model.FaqModel{},
		model.SubCategoryModel{},
		model.SubCategoryServiceModel{},
		model.RatingAndReviewModel{},
		model.UserModel{},
		model.ProfileModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
