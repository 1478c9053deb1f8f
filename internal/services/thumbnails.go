package services

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/btmxh/thumbboard/internal/db"
)

var ErrBoardMissing = errors.New("Board not found, cannot add thumbnail")
var ErrThumbnailNotFound = errors.New("Thumbnail not found or does not belong to this board")

type Thumbnail struct {
	Id           int64     `json:"id"`
	BoardId      string    `json:"board_id"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Title        *string   `json:"title"`
	AddedAt      time.Time `json:"added_at"`
}

func ListThumbnails(tx *db.Tx, boardId string) (thumbnails []Thumbnail, hasErr bool) {
	var rows *sql.Rows
	if tx.Query(&rows, "SELECT id, board_id, video_url, thumbnail_url, title, added_at FROM thumbnails WHERE board_id = $1 ORDER BY added_at DESC, id DESC", boardId) {
		return nil, true
	}
	defer rows.Close()

	thumbnails = []Thumbnail{}
	for rows.Next() {
		var thumbnail Thumbnail
		var title sql.NullString
		if tx.ScanError(rows.Scan(&thumbnail.Id, &thumbnail.BoardId, &thumbnail.VideoURL, &thumbnail.ThumbnailURL, &title, &thumbnail.AddedAt)) {
			return nil, true
		}

		if title.Valid {
			thumbnail.Title = &title.String
		}
		thumbnails = append(thumbnails, thumbnail)
	}

	return thumbnails, tx.ScanError(rows.Err())
}

// AddThumbnail stores an already resolved thumbnail. A board that vanished
// in the meantime is reported as 404 rather than a database error.
func AddThumbnail(tx *db.Tx, boardId, videoURL, thumbnailURL, title string) (thumbnail Thumbnail, hasErr bool) {
	thumbnail = Thumbnail{
		BoardId:      boardId,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Title:        &title,
		AddedAt:      time.Now().UTC(),
	}

	hasErr = tx.QueryRow("INSERT INTO thumbnails (board_id, video_url, thumbnail_url, title, added_at) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		boardId, videoURL, thumbnailURL, title, thumbnail.AddedAt).
		OnForeignKeyViolation(http.StatusNotFound, ErrBoardMissing).
		Scan(nil, &thumbnail.Id)
	return thumbnail, hasErr
}

func DeleteThumbnail(tx *db.Tx, boardId string, id int64) (hasErr bool) {
	affected, hasErr := tx.ExecAffected("DELETE FROM thumbnails WHERE id = $1 AND board_id = $2", id, boardId)
	if hasErr {
		return true
	}

	if affected == 0 {
		tx.PublicError(http.StatusNotFound, ErrThumbnailNotFound)
		return true
	}

	return false
}
