package model

// All 参与自动迁移的全部模型
func All() []any {
	return []any{
		&User{},
		&Post{},
		&Comment{},
		&EncyclopediaContent{},
		&Tutorial{},
		&LearningProgress{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Cart{},
		&Challenge{},
		&Achievement{},
	}
}
