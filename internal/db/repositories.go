package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Posts         *PostRepository
	Categories    *CategoryRepository
	WorkLogs      *WorkLogRepository
	CycleSettings *CycleSettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Posts:         NewPostRepository(database),
		Categories:    NewCategoryRepository(database),
		WorkLogs:      NewWorkLogRepository(database),
		CycleSettings: NewCycleSettingsRepository(database),
	}
}
