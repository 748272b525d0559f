package likeservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogora/internal/common"
)

// ErrNotLikeOwner is returned when the requesting user does not own the like.
// The route layer maps it to 401 rather than the 400 used for other domain
// errors.
var ErrNotLikeOwner = errors.New("You are not authorized to delete this like")

func NewLikeService(db *sql.DB, users UserFinder, blogs BlogFinder) *LikeService {
	return &LikeService{
		m:     newLikeModel(db),
		users: users,
		blogs: blogs,
	}
}

// CreateLike checks both references and then scans all likes for one by the
// same user. The scan filters on userId alone, so a user holds at most one
// like across all blogs; that matches the behavior this system has always had,
// even though one-per-(user, blog) was the stated intent. Concurrent creates
// can both pass the scan; there is no storage constraint behind it.
func (s *LikeService) CreateLike(ctx context.Context, req *CreateLikeRequest) (*Like, error) {
	if req.UserID == 0 || req.BlogID == 0 {
		return nil, common.NewDomainError("userId and blogId must be provided")
	}

	ok, err := s.users.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewDomainError("User with that id does not exist")
	}

	ok, err = s.blogs.BlogExists(ctx, req.BlogID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewDomainError("Blog with that id does not exist")
	}

	likes, err := s.m.getLikes(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		if l.UserID == req.UserID {
			return nil, common.NewDomainError("The associated user has already clicked the like")
		}
	}

	return s.m.insert(ctx, req)
}

// DeleteLike removes the like only when the requesting user owns it.
func (s *LikeService) DeleteLike(ctx context.Context, id, requestingUserID int) (*Like, error) {
	like, err := s.m.getLike(ctx, id)
	if err != nil {
		return nil, err
	}

	if like.UserID != requestingUserID {
		return nil, ErrNotLikeOwner
	}

	return s.m.delete(ctx, id)
}

func (s *LikeService) GetLikesByUser(ctx context.Context, userID int) ([]Like, error) {
	return s.m.getLikesByUser(ctx, userID)
}

func (s *LikeService) CountLikesByBlog(ctx context.Context, blogID int) (int, error) {
	return s.m.countByBlog(ctx, blogID)
}

// DeleteAllLikes is a test teardown helper and is not routed.
func (s *LikeService) DeleteAllLikes(ctx context.Context) error {
	likes, err := s.m.getLikes(ctx)
	if err != nil {
		return err
	}

	for _, l := range likes {
		if _, err := s.m.delete(ctx, l.ID); err != nil {
			return err
		}
	}

	return nil
}
