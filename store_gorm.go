package main

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create is a single INSERT ... ON CONFLICT (email) DO NOTHING, so two
// racing first logins cannot both write: the database keeps one row and the
// loser sees zero rows affected.
func (s *gormUserStore) Create(ctx context.Context, u *User) (bool, error) {
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(u)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type gormRoomStore struct {
	db *gorm.DB
}

func (s *gormRoomStore) All(ctx context.Context) ([]Room, error) {
	rooms := make([]Room, 0)
	err := s.db.WithContext(ctx).Find(&rooms).Error
	return rooms, err
}

func (s *gormRoomStore) ByHostEmail(ctx context.Context, email string) ([]Room, error) {
	rooms := make([]Room, 0)
	err := s.db.WithContext(ctx).Where("host_email = ?", email).Find(&rooms).Error
	return rooms, err
}

func (s *gormRoomStore) ByID(ctx context.Context, id string) (*Room, error) {
	var room Room
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *gormRoomStore) Insert(ctx context.Context, room *Room) error {
	return s.db.WithContext(ctx).Create(room).Error
}
