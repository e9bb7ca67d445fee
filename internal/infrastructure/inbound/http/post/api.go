package post_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	post_service "post-sync-client/internal/domain/ports/input/post"
	ports "post-sync-client/internal/domain/ports/output"
)

var validate = validator.New()

type PostHTTPAPI struct {
	listPostsHandler  *ListPostsHandler
	loadPostsHandler  *LoadPostsHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
	editHandler       *EditHandler
}

func NewPostHTTPAPI(postService post_service.Service, log ports.Logger) *PostHTTPAPI {
	return &PostHTTPAPI{
		listPostsHandler:  NewListPostsHandler(postService),
		loadPostsHandler:  NewLoadPostsHandler(postService, log),
		createPostHandler: NewCreatePostHandler(postService, validate, log),
		updatePostHandler: NewUpdatePostHandler(postService, validate, log),
		deletePostHandler: NewDeletePostHandler(postService, log),
		editHandler:       NewEditHandler(postService, log),
	}
}

func (a *PostHTTPAPI) Register(r gin.IRouter) {
	r.GET("/state", a.listPostsHandler.GetState)

	r.GET("/posts", a.listPostsHandler.ListPosts)
	r.POST("/posts/load", a.loadPostsHandler.LoadPosts)
	r.POST("/posts", a.createPostHandler.CreatePost)
	r.PUT("/posts/:id", a.updatePostHandler.UpdatePost)
	r.DELETE("/posts/:id", a.deletePostHandler.DeletePost)

	r.POST("/edit", a.editHandler.BeginCreate)
	r.POST("/edit/:id", a.editHandler.BeginEdit)
	r.PUT("/edit", a.updatePostHandler.SubmitEdit)
	r.DELETE("/edit", a.editHandler.CancelEdit)

	r.POST("/theme/cycle", a.editHandler.ToggleTheme)
}
