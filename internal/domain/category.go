package domain

// TrainingCategoryName marks the category that allows an extra spot for a
// trainer.
const TrainingCategoryName = "Training"

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (c *Category) IsTraining() bool {
	return c != nil && c.Name == TrainingCategoryName
}

type CreateCategoryInput struct {
	Name  string
	Color string
}
