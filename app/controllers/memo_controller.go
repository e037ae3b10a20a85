package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yamamoto-dev/pointbox/app/models"
	"github.com/yamamoto-dev/pointbox/app/repository"
	"github.com/yamamoto-dev/pointbox/internal/pkg/usercontext"
)

const memoListLimit = 50

// MemoController handles the free-form memo feature.
type MemoController struct {
	memos repository.MemoRepository
}

// NewMemoController creates a new memo controller with repository
func NewMemoController(memos repository.MemoRepository) *MemoController {
	return &MemoController{memos: memos}
}

// HandleList returns the user's newest memos.
func (mc *MemoController) HandleList(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	memos, err := mc.memos.ListByUser(uc.UserID, memoListLimit)
	if err != nil {
		return internalError(c, "memo list failed", err)
	}
	if memos == nil {
		memos = []models.Memo{}
	}
	return c.JSON(fiber.Map{"items": memos})
}

type createMemoRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// HandleCreate stores a new memo for the user.
func (mc *MemoController) HandleCreate(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	var req createMemoRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "title is required")
	}

	memo := &models.Memo{
		UserID: uc.UserID,
		Title:  strings.TrimSpace(req.Title),
		Body:   req.Body,
	}
	if err := memo.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "title is required")
	}

	if err := mc.memos.Create(memo); err != nil {
		return internalError(c, "memo insert failed", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// HandleDelete removes one memo of the user. Deleting an id that does
// not exist (or belongs to someone else) still reports ok.
func (mc *MemoController) HandleDelete(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Bad id")
	}

	if err := mc.memos.DeleteByIDAndUser(id, uc.UserID); err != nil {
		return internalError(c, "memo delete failed", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
