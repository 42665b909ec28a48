package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct istek gövdesini alanlardaki validate etiketlerine göre doğrular.
func Struct(s any) error {
	return validate.Struct(s)
}

// Format doğrulama hatalarını alan adı -> ihlal edilen kural haritasına çevirir.
func Format(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"body": err.Error()}
	}

	errorResponse := make(map[string]string)
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}
