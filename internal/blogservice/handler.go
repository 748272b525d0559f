package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogora/internal/common"
	"github.com/sushihentaime/blogora/internal/tagservice"
)

func NewBlogService(db *sql.DB, c *common.Cache, users UserFinder, tags TagFinder) *BlogService {
	return &BlogService{
		m:     newBlogModel(db),
		c:     c,
		users: users,
		tags:  tags,
	}
}

func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	if req.Title == "" || req.Content == "" || req.AuthorID == 0 || req.Summary == "" || req.Links == nil {
		return nil, common.NewDomainError("title, content, authorId, summary, and links must be provided")
	}

	if len(req.Title) < 3 {
		return nil, common.NewDomainError("title must be at least 3 characters long")
	}

	if len(req.Content) < 100 {
		return nil, common.NewDomainError("content must be at least 100 characters long")
	}

	if len(req.Summary) < 20 {
		return nil, common.NewDomainError("summary must be at least 20 characters long")
	}

	ok, err := s.users.UserExists(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewDomainError("authorId must be an existing user")
	}

	blog, err := s.m.insert(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserForeignKey):
			return nil, common.NewDomainError("authorId must be an existing user")
		default:
			return nil, err
		}
	}

	return blog, nil
}

// GetBlog reads through the cache. A miss falls back to the database and
// primes the entry with the default expiration.
func (s *BlogService) GetBlog(ctx context.Context, id int) (*Blog, error) {
	key := common.CacheKeyBlog(id)

	if v, ok := s.c.Get(key); ok {
		if blog, ok := v.(*Blog); ok {
			return blog, nil
		}
	}

	blog, err := s.m.getBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, blog)

	return blog, nil
}

func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}

func (s *BlogService) GetApprovedBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogsByApproval(ctx, true)
}

func (s *BlogService) GetUnapprovedBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogsByApproval(ctx, false)
}

func (s *BlogService) GetBlogsByAuthor(ctx context.Context, authorID int) ([]Blog, error) {
	return s.m.getBlogsByAuthor(ctx, authorID)
}

// UpdateBlog patches only the provided fields. A provided field is validated
// with the same rule used at creation; absent fields are not re-checked. The
// target row is resolved before any field check so a missing blog surfaces as
// not-found rather than a validation failure.
func (s *BlogService) UpdateBlog(ctx context.Context, id int, req *UpdateBlogRequest) (*Blog, error) {
	if _, err := s.m.getBlog(ctx, id); err != nil {
		return nil, err
	}

	if req.Title != nil && len(*req.Title) < 3 {
		return nil, common.NewDomainError("title must be at least 3 characters long")
	}

	if req.Content != nil && len(*req.Content) < 100 {
		return nil, common.NewDomainError("content must be at least 100 characters long")
	}

	if req.Summary != nil && len(*req.Summary) < 20 {
		return nil, common.NewDomainError("summary must be at least 20 characters long")
	}

	blog, err := s.m.update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlog(id))

	return blog, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, id int) (*Blog, error) {
	blog, err := s.m.delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlog(id))

	return blog, nil
}

func (s *BlogService) ApproveBlog(ctx context.Context, id int) (*Blog, error) {
	return s.setApproval(ctx, id, true)
}

func (s *BlogService) UnapproveBlog(ctx context.Context, id int) (*Blog, error) {
	return s.setApproval(ctx, id, false)
}

func (s *BlogService) setApproval(ctx context.Context, id int, approved bool) (*Blog, error) {
	blog, err := s.m.setApproval(ctx, id, approved)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlog(id))

	return blog, nil
}

// LinkTags verifies every tag before any link is written, so an unknown tag id
// leaves the blog's tag set unchanged.
func (s *BlogService) LinkTags(ctx context.Context, blogID int, tagIDs []int) (*Blog, error) {
	if _, err := s.m.getBlog(ctx, blogID); err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, common.NewDomainError("Blog with that id does not exist")
		default:
			return nil, err
		}
	}

	for _, tagID := range tagIDs {
		ok, err := s.tags.TagExists(ctx, tagID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, common.NewDomainError("One or more tags with that id do not exist")
		}
	}

	if err := s.m.linkTags(ctx, blogID, tagIDs); err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlog(blogID))

	// Re-read so the returned row carries the updated_at the link wrote.
	return s.m.getBlog(ctx, blogID)
}

func (s *BlogService) AppendLink(ctx context.Context, id int, link string) (*Blog, error) {
	if _, err := s.m.getBlog(ctx, id); err != nil {
		return nil, err
	}

	if link == "" {
		return nil, common.NewDomainError("Link must be provided")
	}

	blog, err := s.m.appendLink(ctx, id, link)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlog(id))

	return blog, nil
}

func (s *BlogService) GetBlogTags(ctx context.Context, blogID int) ([]tagservice.Tag, error) {
	if _, err := s.m.getBlog(ctx, blogID); err != nil {
		return nil, err
	}

	return s.m.getTags(ctx, blogID)
}

func (s *BlogService) BlogExists(ctx context.Context, id int) (bool, error) {
	_, err := s.m.getBlog(ctx, id)
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

// DeleteAllBlogs is a test teardown helper and is not routed.
func (s *BlogService) DeleteAllBlogs(ctx context.Context) error {
	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return err
	}

	for _, b := range blogs {
		if _, err := s.m.delete(ctx, b.ID); err != nil {
			return err
		}
		s.c.Delete(common.CacheKeyBlog(b.ID))
	}

	return nil
}
