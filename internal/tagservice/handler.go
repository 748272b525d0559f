package tagservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogora/internal/common"
)

func NewTagService(db *sql.DB) *TagService {
	return &TagService{m: newTagModel(db)}
}

func (s *TagService) GetTags(ctx context.Context) ([]Tag, error) {
	return s.m.getTags(ctx)
}

func (s *TagService) GetTag(ctx context.Context, id int) (*Tag, error) {
	return s.m.getTag(ctx, id)
}

// CreateTag checks name uniqueness by scanning all tags; the unique index on
// tags.name backstops concurrent creates with the same name.
func (s *TagService) CreateTag(ctx context.Context, name string) (*Tag, error) {
	if name == "" {
		return nil, common.NewDomainError("name must be provided")
	}

	tags, err := s.m.getTags(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tags {
		if t.Name == name {
			return nil, common.NewDomainError("Tag with that name exists")
		}
	}

	tag, err := s.m.insert(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateName):
			return nil, common.NewDomainError("Tag with that name exists")
		default:
			return nil, err
		}
	}

	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id int, name string) (*Tag, error) {
	if id <= 0 {
		return nil, common.NewDomainError("id must be provided")
	}
	if name == "" {
		return nil, common.NewDomainError("name must be provided")
	}

	_, err := s.m.getTag(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, common.NewDomainError("Tag with that id does not exist")
		default:
			return nil, err
		}
	}

	return s.m.update(ctx, id, name)
}

func (s *TagService) DeleteTag(ctx context.Context, id int) error {
	if id <= 0 {
		return common.NewDomainError("id must be provided")
	}

	_, err := s.m.getTag(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return common.NewDomainError("Tag with that id does not exist")
		default:
			return err
		}
	}

	return s.m.delete(ctx, id)
}

// TagExists is the referential check used when linking tags to a blog.
func (s *TagService) TagExists(ctx context.Context, id int) (bool, error) {
	_, err := s.m.getTag(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

// DeleteAllTags is a test teardown helper and is not routed.
func (s *TagService) DeleteAllTags(ctx context.Context) error {
	tags, err := s.m.getTags(ctx)
	if err != nil {
		return err
	}

	for _, t := range tags {
		if err := s.m.delete(ctx, t.ID); err != nil {
			return err
		}
	}

	return nil
}
