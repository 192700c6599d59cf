package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves the posts resource.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest is the body of POST /posts. Author defaults to the caller.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author" validate:"omitempty,uuid"`
}

// UpdatePostRequest is the body of PUT /posts/:id.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts))
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	authorID, ok := bodyID(req.Author)
	if !ok {
		return response.InvalidID(c, "author")
	}

	post, err := h.postUC.Create(c.Request().Context(), usecase.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
		CallerID: deliverycontext.GetUserID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post))
}

func (h *PostHandler) GetPost(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	post, err := h.postUC.Read(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// UpdatePost replaces the title and content the caller provides. The author is fixed.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.postUC.Update(c.Request().Context(), id, usecase.UpdatePostInput{
		CallerID: deliverycontext.GetUserID(c),
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	if err := h.postUC.Delete(c.Request().Context(), deliverycontext.GetUserID(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
