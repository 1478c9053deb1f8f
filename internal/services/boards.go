package services

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/btmxh/thumbboard/internal/db"
	"github.com/google/uuid"
)

const DefaultBoardName = "Untitled Board"

var ErrEmptyBoardName = errors.New("Board name cannot be empty")
var ErrBoardNotFound = errors.New("Board not found")

type Board struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type BoardWithThumbnails struct {
	Board
	Thumbnails []Thumbnail `json:"thumbnails"`
}

// NormalizeBoardName trims name and reports whether anything is left.
func NormalizeBoardName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	return name, name != ""
}

func ListBoards(tx *db.Tx) (boards []Board, hasErr bool) {
	var rows *sql.Rows
	if tx.Query(&rows, "SELECT id, name, created_at FROM boards ORDER BY created_at DESC, id") {
		return nil, true
	}
	defer rows.Close()

	boards = []Board{}
	for rows.Next() {
		var board Board
		if tx.ScanError(rows.Scan(&board.Id, &board.Name, &board.CreatedAt)) {
			return nil, true
		}

		boards = append(boards, board)
	}

	return boards, tx.ScanError(rows.Err())
}

func CreateBoard(tx *db.Tx, name string) (board Board, hasErr bool) {
	name, ok := NormalizeBoardName(name)
	if !ok {
		tx.PublicError(http.StatusBadRequest, ErrEmptyBoardName)
		return board, true
	}

	board = Board{Id: uuid.New().String(), Name: name, CreatedAt: time.Now().UTC()}
	if tx.Exec(nil, "INSERT INTO boards (id, name, created_at) VALUES ($1, $2, $3)", board.Id, board.Name, board.CreatedAt) {
		return Board{}, true
	}

	return board, false
}

func CheckBoardExists(tx *db.Tx, id string) (hasRow, hasErr bool) {
	var dummy int
	hasErr = tx.QueryRow("SELECT 1 FROM boards WHERE id = $1", id).Scan(&hasRow, &dummy)
	return hasRow, hasErr
}

func GetBoard(tx *db.Tx, id string) (board BoardWithThumbnails, hasErr bool) {
	var hasRow bool
	if tx.QueryRow("SELECT id, name, created_at FROM boards WHERE id = $1", id).Scan(&hasRow, &board.Id, &board.Name, &board.CreatedAt) {
		return board, true
	}

	if !hasRow {
		tx.PublicError(http.StatusNotFound, ErrBoardNotFound)
		return board, true
	}

	board.Thumbnails, hasErr = ListThumbnails(tx, id)
	return board, hasErr
}

func RenameBoard(tx *db.Tx, id string, name string) (board Board, hasErr bool) {
	name, ok := NormalizeBoardName(name)
	if !ok {
		tx.PublicError(http.StatusBadRequest, ErrEmptyBoardName)
		return board, true
	}

	affected, hasErr := tx.ExecAffected("UPDATE boards SET name = $1 WHERE id = $2", name, id)
	if hasErr {
		return board, true
	}

	if affected == 0 {
		tx.PublicError(http.StatusNotFound, ErrBoardNotFound)
		return board, true
	}

	return Board{Id: id, Name: name}, false
}

// DeleteBoard removes the board; its thumbnails go with it through the
// foreign key cascade.
func DeleteBoard(tx *db.Tx, id string) (hasErr bool) {
	affected, hasErr := tx.ExecAffected("DELETE FROM boards WHERE id = $1", id)
	if hasErr {
		return true
	}

	if affected == 0 {
		tx.PublicError(http.StatusNotFound, ErrBoardNotFound)
		return true
	}

	return false
}
