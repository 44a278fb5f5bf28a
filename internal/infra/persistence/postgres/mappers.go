package postgres

import (
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/persistence/model"
)

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	service := &entity.Service{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		TimeToComplete:  data.TimeToComplete,
		Price:           data.Price,
		Warranty:        data.Warranty,
		Status:          entity.ServiceStatus(data.Status),
		PriceStatus:     entity.PriceStatus(data.PriceStatus),
		Thumbnail:       data.Thumbnail,
		MetaTitle:       data.MetaTitle,
		MetaDescription: data.MetaDescription,
		CategoryID:      data.CategoryID,
		SubCategoryID:   data.SubCategoryID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	for _, step := range data.HowDoesItWorks {
		service.HowDoesItWorks = append(service.HowDoesItWorks, &entity.HowDoesItWork{
			ID:          step.ID,
			ServiceID:   step.ServiceID,
			Title:       step.Title,
			Description: step.Description,
			Position:    step.Position,
		})
	}
	for _, include := range data.Includes {
		service.Includes = append(service.Includes, &entity.Include{
			ID:        include.ID,
			ServiceID: include.ServiceID,
			Text:      include.Text,
			Position:  include.Position,
		})
	}
	for _, exclude := range data.Excludes {
		service.Excludes = append(service.Excludes, &entity.Exclude{
			ID:        exclude.ID,
			ServiceID: exclude.ServiceID,
			Text:      exclude.Text,
			Position:  exclude.Position,
		})
	}
	for _, faq := range data.Faqs {
		service.Faqs = append(service.Faqs, &entity.Faq{
			ID:        faq.ID,
			ServiceID: faq.ServiceID,
			Question:  faq.Question,
			Answer:    faq.Answer,
			Position:  faq.Position,
		})
	}
	for _, review := range data.RatingAndReviews {
		service.RatingAndReviews = append(service.RatingAndReviews, toReviewDomain(review))
	}

	return service
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		TimeToComplete:  data.TimeToComplete,
		Price:           data.Price,
		Warranty:        data.Warranty,
		Status:          string(data.Status),
		PriceStatus:     string(data.PriceStatus),
		Thumbnail:       data.Thumbnail,
		MetaTitle:       data.MetaTitle,
		MetaDescription: data.MetaDescription,
		CategoryID:      data.CategoryID,
		SubCategoryID:   data.SubCategoryID,
	}
}

// serviceUpdateColumns maps the set fields of update to column values.
func serviceUpdateColumns(update *entity.ServiceUpdate) map[string]any {
	columns := make(map[string]any)
	if v, ok := update.Name.Get(); ok {
		columns["service_name"] = v
	}
	if v, ok := update.Description.Get(); ok {
		columns["service_description"] = v
	}
	if v, ok := update.TimeToComplete.Get(); ok {
		columns["time_to_complete"] = v
	}
	if v, ok := update.Price.Get(); ok {
		columns["price"] = v
	}
	if v, ok := update.Warranty.Get(); ok {
		columns["warranty"] = v
	}
	if v, ok := update.Status.Get(); ok {
		columns["status"] = string(v)
	}
	if v, ok := update.PriceStatus.Get(); ok {
		columns["price_status"] = string(v)
	}
	if v, ok := update.Thumbnail.Get(); ok {
		columns["thumbnail"] = v
	}
	if v, ok := update.MetaTitle.Get(); ok {
		columns["meta_title"] = v
	}
	if v, ok := update.MetaDescription.Get(); ok {
		columns["meta_description"] = v
	}

	return columns
}

func toReviewDomain(data *model.RatingAndReviewModel) *entity.RatingAndReview {
	review := &entity.RatingAndReview{
		ID:        data.ID,
		ServiceID: data.ServiceID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
	}

	if data.User != nil {
		reviewer := &entity.Reviewer{
			ID:        data.User.ID,
			FirstName: data.User.FirstName,
			LastName:  data.User.LastName,
		}
		if data.User.Profile != nil {
			reviewer.ProfileFirstName = data.User.Profile.FirstName
			reviewer.ProfileLastName = data.User.Profile.LastName
		}
		reviewer.DisplayName = reviewer.ResolveDisplayName()
		review.User = reviewer
	}

	return review
}

func toSubCategoryDomain(data *model.SubCategoryModel) *entity.SubCategory {
	return &entity.SubCategory{
		ID:         data.ID,
		Name:       data.Name,
		CategoryID: data.CategoryID,
	}
}
