package tagservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/blogora/internal/common"
)

func setupTestEnvironment(t *testing.T) (*TagService, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM tags")
		return err
	}

	return NewTagService(db), cleanup
}

func TestCreateTag(t *testing.T) {
	s, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		tagName     string
		expectedErr string
	}{
		{
			name:    "valid tag",
			tagName: "golang",
		},
		{
			name:    "single character tag",
			tagName: "x",
		},
		{
			name:        "empty name",
			tagName:     "",
			expectedErr: "name must be provided",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(func() {
				assert.NoError(t, cleanup())
			})

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			tag, err := s.CreateTag(ctx, tc.tagName)

			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)
				assert.True(t, common.IsDomainError(err))
				return
			}

			assert.NoError(t, err)
			assert.NotZero(t, tag.ID)
			assert.Equal(t, tc.tagName, tag.Name)

			got, err := s.GetTag(ctx, tag.ID)
			assert.NoError(t, err)
			assert.Equal(t, tag.Name, got.Name)
		})
	}
}

func TestCreateTagDuplicateName(t *testing.T) {
	s, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.CreateTag(ctx, "golang")
	assert.NoError(t, err)

	_, err = s.CreateTag(ctx, "golang")
	assert.EqualError(t, err, "Tag with that name exists")
	assert.True(t, common.IsDomainError(err))
}

func TestUpdateTag(t *testing.T) {
	s, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tag, err := s.CreateTag(ctx, "golang")
	assert.NoError(t, err)

	updated, err := s.UpdateTag(ctx, tag.ID, "postgres")
	assert.NoError(t, err)
	assert.Equal(t, tag.ID, updated.ID)
	assert.Equal(t, "postgres", updated.Name)

	_, err = s.UpdateTag(ctx, 0, "postgres")
	assert.EqualError(t, err, "id must be provided")

	_, err = s.UpdateTag(ctx, tag.ID, "")
	assert.EqualError(t, err, "name must be provided")

	_, err = s.UpdateTag(ctx, tag.ID+1000, "postgres")
	assert.EqualError(t, err, "Tag with that id does not exist")
}

func TestDeleteTag(t *testing.T) {
	s, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tag, err := s.CreateTag(ctx, "golang")
	assert.NoError(t, err)

	err = s.DeleteTag(ctx, tag.ID)
	assert.NoError(t, err)

	ok, err := s.TagExists(ctx, tag.ID)
	assert.NoError(t, err)
	assert.False(t, ok)

	err = s.DeleteTag(ctx, tag.ID)
	assert.EqualError(t, err, "Tag with that id does not exist")
	assert.True(t, common.IsDomainError(err))
}

func TestGetTagsOrderedByName(t *testing.T) {
	s, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range []string{"zig", "ada", "golang"} {
		_, err := s.CreateTag(ctx, name)
		assert.NoError(t, err)
	}

	tags, err := s.GetTags(ctx)
	assert.NoError(t, err)
	assert.Len(t, tags, 3)
	assert.Equal(t, "ada", tags[0].Name)
	assert.Equal(t, "golang", tags[1].Name)
	assert.Equal(t, "zig", tags[2].Name)
}
