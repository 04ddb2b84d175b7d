package repository

import (
	"classpoint_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository interface {
	FindByID(id uint) (*model.Test, error)
	FindByIDInClassroom(id, classroomID uint) (*model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDInClassroom(id, classroomID uint) (*model.Test, error) {
	var test model.Test
	err := r.db.Where("id = ? AND classroom_id = ?", id, classroomID).First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}
