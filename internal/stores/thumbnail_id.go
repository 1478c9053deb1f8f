package stores

import "github.com/gin-gonic/gin"

const ThumbnailIdKey = "thumbnail-id"

func SetThumbnailId(c *gin.Context, id int64) {
	c.Set(ThumbnailIdKey, id)
}

func GetThumbnailId(c *gin.Context) int64 {
	if value, ok := c.Get(ThumbnailIdKey); ok && value != nil {
		id, ok := value.(int64)
		if ok {
			return id
		}
	}

	panic("Thumbnail ID not set, please check the usage of SetThumbnailId")
}
