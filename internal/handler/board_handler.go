package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"boardapi/internal/model"
	"boardapi/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface) *BoardHandler {
	return &BoardHandler{
		boardRepo: boardRepo,
	}
}

type CreateBoardRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateBoardRequest uses pointer fields so an omitted field can be told
// apart from one set to the empty string. Omitted fields keep their
// stored value.
type UpdateBoardRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type ListBoardsQuery struct {
	Limit  int `form:"limit,default=10" binding:"min=1,max=10"`
	Offset int `form:"offset" binding:"min=0"`
}

type BoardResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	CreatedDate string `json:"createdDate"`
}

func toBoardResponse(board *model.Board) BoardResponse {
	return BoardResponse{
		ID:          board.ID,
		Title:       board.Title,
		Content:     board.Content,
		CreatedDate: board.CreatedDate.Format(time.RFC3339),
	}
}

// Create creates a new board
// @Summary      Create a board
// @Description  Insert a new board; id and createdDate are server-assigned
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Param        board  body  CreateBoardRequest  true  "Board fields"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board := &model.Board{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// List returns boards ordered most recent first
// @Summary      List boards
// @Tags         Boards
// @Produce      json
// @Param        limit   query  int  false  "Page size (1-10)"  default(10)
// @Param        offset  query  int  false  "Records to skip"   default(0)
// @Success      200  {array}   BoardResponse
// @Failure      400  {object}  map[string]string
// @Router       /boards [get]
func (h *BoardHandler) List(c *gin.Context) {
	var query ListBoardsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit or offset"})
		return
	}

	boards, err := h.boardRepo.List(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	response := make([]BoardResponse, len(boards))
	for i := range boards {
		response[i] = toBoardResponse(&boards[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByID returns a single board
// @Summary      Get a board by id
// @Tags         Boards
// @Produce      json
// @Param        id  path  int  true  "Board id"
// @Success      200  {object}  BoardResponse
// @Failure      404  {object}  map[string]string
// @Router       /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}

	if board == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(board))
}

// Update applies a partial update to a board
// @Summary      Update a board
// @Description  Only fields present in the payload are changed; an empty payload is a no-op
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Param        id     path  int                 true  "Board id"
// @Param        board  body  UpdateBoardRequest  true  "Fields to change"
// @Success      200  {object}  BoardResponse
// @Failure      404  {object}  map[string]string
// @Router       /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}

	if board == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != nil {
		board.Title = *req.Title
	}
	if req.Content != nil {
		board.Content = *req.Content
	}

	if err := h.boardRepo.Update(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(board))
}

// Delete permanently removes a board
// @Summary      Delete a board
// @Tags         Boards
// @Produce      json
// @Param        id  path  int  true  "Board id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	if err := h.boardRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
