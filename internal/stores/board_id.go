package stores

import "github.com/gin-gonic/gin"

const BoardIdKey = "board-id"

func SetBoardId(c *gin.Context, id string) {
	c.Set(BoardIdKey, id)
}

func GetBoardId(c *gin.Context) string {
	if value, ok := c.Get(BoardIdKey); ok && value != nil {
		id, ok := value.(string)
		if ok {
			return id
		}
	}

	panic("Board ID not set, please check the usage of SetBoardId")
}
