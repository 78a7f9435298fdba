package services

import (
	"shopadmin/internal/domain"
	"shopadmin/internal/validate"
)

// User-facing outcome strings. Every path through the workflow ends in
// exactly one of these (or empty for a plain render); storage errors are
// never shown raw.
const (
	MsgCreated = "Category created."
	MsgUpdated = "Category updated."
	MsgDeleted = "Category deleted."

	ErrNameInvalid      = "Category name is required and must be at most 64 characters."
	ErrNameTaken        = "Category name already exists."
	ErrNameTakenByOther = "Another category with the same name exists."
	ErrInvalidID        = "Invalid category."
	ErrInUse            = "Cannot delete: category is in use by products."
	ErrCreateFailed     = "Failed to create category."
	ErrUpdateFailed     = "Failed to update category."
	ErrDeleteFailed     = "Failed to delete category."
)

// CategoryStore is the persistence capability the workflow needs; the SQL
// implementation lives in repos, tests substitute a double.
type CategoryStore interface {
	ListWithCounts() ([]domain.Category, error)
	NameExists(name string) (bool, error)
	NameExistsExcluding(name string, id int64) (bool, error)
	CountProducts(id int64) (int, error)
	Insert(name, imgName string) error
	Update(id int64, name, imgName string) (rows int64, err error)
	Delete(id int64) (rows int64, err error)
}

type CommandKind int

const (
	CmdNoOp CommandKind = iota
	CmdCreate
	CmdUpdate
	CmdDelete
)

// CategoryCommand is the typed, validated form of one request. Invalid
// input never produces a command, so nothing unvalidated reaches the store.
type CategoryCommand struct {
	Kind    CommandKind
	ID      int64
	Name    string
	ImgName string
}

// ParseCategoryCommand classifies a request into a command. Mutations
// require POST; a GET, a missing action or an unknown action is a NoOp.
// A non-empty errMsg means the request was a recognized mutation with
// invalid fields and must be rendered as an error without store access.
func ParseCategoryCommand(method, action string, field func(string) string) (cmd CategoryCommand, errMsg string) {
	if method != "POST" {
		return CategoryCommand{Kind: CmdNoOp}, ""
	}

	switch action {
	case "create":
		name, ok := validate.CategoryName(field("category_name"))
		if !ok {
			return CategoryCommand{}, ErrNameInvalid
		}
		return CategoryCommand{Kind: CmdCreate, Name: name, ImgName: validate.ImgName(field("img_name"))}, ""

	case "update":
		id, ok := validate.CategoryID(field("category_id"))
		if !ok {
			return CategoryCommand{}, ErrInvalidID
		}
		name, ok := validate.CategoryName(field("category_name"))
		if !ok {
			return CategoryCommand{}, ErrNameInvalid
		}
		return CategoryCommand{Kind: CmdUpdate, ID: id, Name: name, ImgName: validate.ImgName(field("img_name"))}, ""

	case "delete":
		id, ok := validate.CategoryID(field("category_id"))
		if !ok {
			return CategoryCommand{}, ErrInvalidID
		}
		return CategoryCommand{Kind: CmdDelete, ID: id}, ""
	}

	return CategoryCommand{Kind: CmdNoOp}, ""
}

// CategoryService applies validated commands against the store and owns
// the duplicate-name and in-use pre-checks. The store's UNIQUE constraint
// stays the authoritative uniqueness guard; the pre-checks only buy a
// friendlier message when no race is in play.
type CategoryService struct {
	Store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{Store: store}
}

func (s *CategoryService) List() ([]domain.Category, error) {
	return s.Store.ListWithCounts()
}

// Apply executes one command. Exactly one of success/errMsg is non-empty
// for mutating commands; both are empty for a NoOp.
func (s *CategoryService) Apply(cmd CategoryCommand) (success, errMsg string) {
	switch cmd.Kind {
	case CmdCreate:
		return s.create(cmd)
	case CmdUpdate:
		return s.update(cmd)
	case CmdDelete:
		return s.delete(cmd)
	}
	return "", ""
}

func (s *CategoryService) create(cmd CategoryCommand) (string, string) {
	taken, err := s.Store.NameExists(cmd.Name)
	if err != nil {
		return "", ErrCreateFailed
	}
	if taken {
		return "", ErrNameTaken
	}
	// A concurrent insert can still win between the check and here; the
	// constraint rejects it and we land on the generic failure.
	if err := s.Store.Insert(cmd.Name, cmd.ImgName); err != nil {
		return "", ErrCreateFailed
	}
	return MsgCreated, ""
}

func (s *CategoryService) update(cmd CategoryCommand) (string, string) {
	taken, err := s.Store.NameExistsExcluding(cmd.Name, cmd.ID)
	if err != nil {
		return "", ErrUpdateFailed
	}
	if taken {
		return "", ErrNameTakenByOther
	}
	rows, err := s.Store.Update(cmd.ID, cmd.Name, cmd.ImgName)
	if err != nil || rows == 0 {
		// rows == 0: the id does not exist (or vanished under us); there
		// is no evidence of a write, so this is not a success.
		return "", ErrUpdateFailed
	}
	return MsgUpdated, ""
}

func (s *CategoryService) delete(cmd CategoryCommand) (string, string) {
	n, err := s.Store.CountProducts(cmd.ID)
	if err != nil {
		return "", ErrDeleteFailed
	}
	if n > 0 {
		return "", ErrInUse
	}
	rows, err := s.Store.Delete(cmd.ID)
	if err != nil || rows == 0 {
		return "", ErrDeleteFailed
	}
	return MsgDeleted, ""
}
