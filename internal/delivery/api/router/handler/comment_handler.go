package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves the comments resource.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CreateCommentRequest is the body of POST /comments. UserID defaults to the caller.
type CreateCommentRequest struct {
	UserID  string `json:"userId" validate:"omitempty,uuid"`
	PostID  string `json:"postId" validate:"required,uuid"`
	Content string `json:"content"`
}

// ListComments returns the comments of the post named by :postId.
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, ok := pathID(c, "postId")
	if !ok {
		return response.InvalidID(c, "postId")
	}

	comments, err := h.commentUC.ListByPost(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CommentListResponse{Comments: toCommentResponses(comments)})
}

func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	authorID, ok := bodyID(req.UserID)
	if !ok {
		return response.InvalidID(c, "userId")
	}
	postID, ok := bodyID(req.PostID)
	if !ok {
		return response.InvalidID(c, "postId")
	}

	comment, err := h.commentUC.Create(c.Request().Context(), usecase.CreateCommentInput{
		AuthorID: authorID,
		PostID:   postID,
		Content:  req.Content,
		CallerID: deliverycontext.GetUserID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCommentResponse(comment))
}

// DeleteComment removes a comment. An unknown id is reported as 404.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	deleted, err := h.commentUC.Delete(c.Request().Context(), deliverycontext.GetUserID(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if deleted == nil {
		return response.HandleAppError(c, domainerrors.ErrCommentNotFound)
	}

	return response.NoContent(c)
}
