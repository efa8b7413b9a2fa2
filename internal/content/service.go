package content

import (
	"context"
	"errors"

	"drafter/internal/llm"
	"drafter/internal/project"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = project.ErrNotFound
	ErrSectionNotFound = errors.New("section not found")
)

// Service orchestrates generation, refinement, and the per-section history.
// Every mutation loads the project scoped to its owner first; a mismatch
// aborts with ErrNotFound and no state change.
type Service struct {
	DB  *gorm.DB
	LLM llm.Client
}

// Generate walks the current outline in order, calling the gateway once per
// section, and replaces the whole content map with the result. Sections no
// longer in the outline lose their text; their history stays.
func (s *Service) Generate(ctx context.Context, userID, projectID uint64) (project.ContentMap, error) {
	var p project.Project
	if err := s.load(ctx, s.DB, userID, projectID, &p); err != nil {
		return nil, err
	}

	generated := project.ContentMap{}
	for _, section := range p.Outline {
		generated[section] = s.LLM.GenerateSection(ctx, p.Topic, section)
	}

	err := s.DB.WithContext(ctx).Model(&project.Project{}).
		Where("id = ?", p.ID).
		Update("content", generated).Error
	if err != nil {
		return nil, err
	}
	return generated, nil
}

// Refine rewrites one section and appends a refinement event carrying the
// text it replaced. Content and history commit in one transaction; if either
// write fails, neither sticks.
func (s *Service) Refine(ctx context.Context, userID, projectID uint64, section, instruction string) (string, error) {
	var newText string

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p project.Project
		if err := s.load(ctx, tx, userID, projectID, &p); err != nil {
			return err
		}

		oldText, ok := p.Content[section]
		if !ok {
			return ErrSectionNotFound
		}

		newText = s.LLM.Refine(ctx, oldText, instruction)

		p.Content[section] = newText
		p.History[section] = append(p.History[section], project.RefinementEvent(oldText, newText, instruction))

		return tx.Model(&project.Project{}).Where("id = ?", p.ID).Updates(map[string]any{
			"content": p.Content,
			"history": p.History,
		}).Error
	})
	if err != nil {
		return "", err
	}
	return newText, nil
}

// AddFeedback appends a like/dislike marker to a section's history. The
// section does not have to exist in the outline or content.
func (s *Service) AddFeedback(ctx context.Context, userID, projectID uint64, section, feedback string) error {
	return s.appendEvent(ctx, userID, projectID, section, project.FeedbackEvent(feedback))
}

// AddComment appends a freeform note to a section's history.
func (s *Service) AddComment(ctx context.Context, userID, projectID uint64, section, comment string) error {
	return s.appendEvent(ctx, userID, projectID, section, project.CommentEvent(comment))
}

func (s *Service) History(ctx context.Context, userID, projectID uint64) (project.HistoryMap, error) {
	var p project.Project
	if err := s.load(ctx, s.DB, userID, projectID, &p); err != nil {
		return nil, err
	}
	return p.History, nil
}

func (s *Service) Content(ctx context.Context, userID, projectID uint64) (project.ContentMap, error) {
	var p project.Project
	if err := s.load(ctx, s.DB, userID, projectID, &p); err != nil {
		return nil, err
	}
	return p.Content, nil
}

func (s *Service) appendEvent(ctx context.Context, userID, projectID uint64, section string, ev project.Event) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p project.Project
		if err := s.load(ctx, tx, userID, projectID, &p); err != nil {
			return err
		}

		p.History[section] = append(p.History[section], ev)

		return tx.Model(&project.Project{}).Where("id = ?", p.ID).
			Update("history", p.History).Error
	})
}

func (s *Service) load(ctx context.Context, tx *gorm.DB, userID, projectID uint64, p *project.Project) error {
	err := tx.WithContext(ctx).Where("id = ? AND user_id = ?", projectID, userID).First(p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
