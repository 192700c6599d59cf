package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find comment by id")
	}

	comments, err := repo.populate(ctx, []model.CommentModel{commentM})
	if err != nil {
		return nil, err
	}

	return comments[0], nil
}

func (repo *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	var commentMs []model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&commentMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments by post")
	}

	return repo.populate(ctx, commentMs)
}

func (repo *commentRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Comment, error) {
	var commentMs []model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at ASC").
		Find(&commentMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments by author")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for i := range commentMs {
		comments = append(comments, toCommentDomain(&commentMs[i]))
	}

	return comments, nil
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostNotFound.WrapMessage("comment references a missing post or author")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCommentNotFound
	}

	return nil
}

func (repo *commentRepository) DeleteByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.CommentModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comments by post")
	}

	return result.RowsAffected, nil
}

// populate loads the author and post summaries for a batch of comments with one query per table.
func (repo *commentRepository) populate(ctx context.Context, commentMs []model.CommentModel) ([]*entity.Comment, error) {
	comments := make([]*entity.Comment, 0, len(commentMs))
	if len(commentMs) == 0 {
		return comments, nil
	}

	authorIDs := make([]uuid.UUID, 0, len(commentMs))
	postIDs := make([]uuid.UUID, 0, len(commentMs))
	for _, c := range commentMs {
		authorIDs = append(authorIDs, c.AuthorID)
		postIDs = append(postIDs, c.PostID)
	}

	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Select("id", "name", "email").
		Where("id IN ?", authorIDs).
		Find(&userMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load comment authors")
	}

	var postMs []model.PostModel
	err = repo.db.WithContext(ctx).
		Select("id", "title").
		Where("id IN ?", postIDs).
		Find(&postMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load comment posts")
	}

	authors := make(map[uuid.UUID]entity.UserSummary, len(userMs))
	for _, u := range userMs {
		authors[u.ID] = toUserDomain(&u).Summary()
	}
	posts := make(map[uuid.UUID]entity.PostSummary, len(postMs))
	for _, p := range postMs {
		posts[p.ID] = toPostDomain(&p).Summary()
	}

	for i := range commentMs {
		comment := toCommentDomain(&commentMs[i])
		if author, ok := authors[comment.AuthorID]; ok {
			comment.Author = &author
		}
		if post, ok := posts[comment.PostID]; ok {
			comment.Post = &post
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		PostID:    data.PostID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		PostID:    data.PostID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
