package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testArticle struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"uniqueIndex;not null"`
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var testDBSeq int

// newTestDB opens an isolated in-memory sqlite database
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&testArticle{}))
	return db
}

func TestBaseRepository_SaveAssignsID(t *testing.T) {
	repo := NewBaseRepository[testArticle](newTestDB(t))
	ctx := context.Background()

	article := &testArticle{Title: "hello", Author: "amy"}
	require.NoError(t, repo.Save(ctx, article))
	assert.NotZero(t, article.ID)
	assert.False(t, article.CreatedAt.IsZero())
}

func TestBaseRepository_FindOne(t *testing.T) {
	repo := NewBaseRepository[testArticle](newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &testArticle{Title: "hello", Author: "amy"}))

	found, err := repo.FindOne(ctx, Filter{"title": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "amy", found.Author)

	_, err = repo.FindOne(ctx, Filter{"title": "missing"})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestBaseRepository_FindOrdered(t *testing.T) {
	repo := NewBaseRepository[testArticle](newTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, repo.Save(ctx, &testArticle{Title: title}))
	}

	articles, err := repo.Find(ctx, nil, nil, "title ASC")
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "alpha", articles[0].Title)
	assert.Equal(t, "bravo", articles[1].Title)
	assert.Equal(t, "charlie", articles[2].Title)
}

func TestBaseRepository_FindWithFilter(t *testing.T) {
	repo := NewBaseRepository[testArticle](newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &testArticle{Title: "a", Author: "amy"}))
	require.NoError(t, repo.Save(ctx, &testArticle{Title: "b", Author: "bob"}))
	require.NoError(t, repo.Save(ctx, &testArticle{Title: "c", Author: "amy"}))

	articles, err := repo.Find(ctx, Filter{"author": "amy"}, nil, "title ASC")
	require.NoError(t, err)
	assert.Len(t, articles, 2)
}

func TestBaseRepository_Exists(t *testing.T) {
	repo := NewBaseRepository[testArticle](newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &testArticle{Title: "a"}))

	exists, err := repo.Exists(ctx, Filter{"title": "a"})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, Filter{"title": "z"})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBaseRepository_SaveDuplicateKey(t *testing.T) {
	repo := NewBaseRepository[testArticle](newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &testArticle{Title: "unique"}))

	err := repo.Save(ctx, &testArticle{Title: "unique"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestBaseRepository_Delete(t *testing.T) {
	repo := NewBaseRepository[testArticle](newTestDB(t))
	ctx := context.Background()

	article := &testArticle{Title: "bye"}
	require.NoError(t, repo.Save(ctx, article))

	affected, err := repo.Delete(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, article.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestBaseRepository_DeleteWhere(t *testing.T) {
	repo := NewBaseRepository[testArticle](newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &testArticle{Title: "a", Author: "amy"}))
	require.NoError(t, repo.Save(ctx, &testArticle{Title: "b", Author: "amy"}))

	affected, err := repo.DeleteWhere(ctx, Filter{"author": "amy"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}
