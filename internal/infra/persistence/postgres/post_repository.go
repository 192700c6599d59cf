package postgres

import (
	"context"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

func (repo *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postMs []model.PostModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&postMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}

	return toPostDomains(postMs), nil
}

func (repo *postRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts by author")
	}

	return toPostDomains(postMs), nil
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("post author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update writes title and content. author_id and comment_ids are never part of the update set;
// comment references change only through AddComment and RemoveComment.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)
	postM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Select("title", "content", "updated_at").
		Updates(postM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}

	return nil
}

// AddComment appends commentID to the post's comment references under a row lock.
func (repo *postRepository) AddComment(ctx context.Context, postID, commentID uuid.UUID) error {
	return repo.mutateCommentIDs(ctx, postID, func(post *entity.Post) { post.AddComment(commentID) })
}

// RemoveComment pulls commentID from the post's comment references under a row lock.
func (repo *postRepository) RemoveComment(ctx context.Context, postID, commentID uuid.UUID) error {
	return repo.mutateCommentIDs(ctx, postID, func(post *entity.Post) { post.RemoveComment(commentID) })
}

func (repo *postRepository) mutateCommentIDs(ctx context.Context, postID uuid.UUID, mutate func(*entity.Post)) error {
	var postM model.PostModel
	if err := lockForUpdate(repo.db.WithContext(ctx)).Where("id = ?", postID).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to lock post")
	}

	post := toPostDomain(&postM)
	mutate(post)

	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", postID).
		Select("comment_ids", "updated_at").
		Updates(&model.PostModel{CommentIDs: uuidList(post.CommentIDs), UpdatedAt: time.Now()}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post comment references")
	}

	return nil
}

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		AuthorID:   data.AuthorID,
		CommentIDs: uuidList(data.CommentIDs),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toPostDomains(data []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for i := range data {
		posts = append(posts, toPostDomain(&data[i]))
	}

	return posts
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		AuthorID:   data.AuthorID,
		CommentIDs: uuidList(data.CommentIDs),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
