package project

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound covers both a missing project and a project owned by someone
// else; callers cannot tell the two apart, which keeps project ids
// unenumerable.
var ErrNotFound = errors.New("project not found")

type Service struct {
	DB *gorm.DB

	// PruneRemoved drops content entries for sections removed by an outline
	// replacement. History is kept either way.
	PruneRemoved bool
}

type CreateInput struct {
	Title   string
	DocType string
	Topic   string
}

func (s *Service) Create(ctx context.Context, userID uint64, in CreateInput) (uint64, error) {
	p := Project{
		UserID:  userID,
		Title:   in.Title,
		DocType: in.DocType,
		Topic:   in.Topic,
		Outline: OutlineList{},
		Content: ContentMap{},
		History: HistoryMap{},
	}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Get loads a project scoped to its owner.
func (s *Service) Get(ctx context.Context, userID, projectID uint64) (*Project, error) {
	var p Project
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", projectID, userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) List(ctx context.Context, userID uint64) ([]Project, error) {
	var out []Project
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&out).Error
	return out, err
}

// SetOutline fully replaces the stored outline. Content and history for
// sections that fell out of the outline are retained unless pruning is on,
// and even then only content is dropped.
func (s *Service) SetOutline(ctx context.Context, userID, projectID uint64, sections []string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Project
		if err := tx.Where("id = ? AND user_id = ?", projectID, userID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if sections == nil {
			sections = []string{}
		}
		p.Outline = OutlineList(sections)

		if s.PruneRemoved {
			keep := make(map[string]struct{}, len(sections))
			for _, name := range sections {
				keep[name] = struct{}{}
			}
			for name := range p.Content {
				if _, ok := keep[name]; !ok {
					delete(p.Content, name)
				}
			}
		}

		return tx.Model(&Project{}).Where("id = ?", p.ID).Updates(map[string]any{
			"outline": p.Outline,
			"content": p.Content,
		}).Error
	})
}
