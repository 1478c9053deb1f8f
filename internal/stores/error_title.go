package stores

import "github.com/gin-gonic/gin"

const ErrorTitle = "error-title"

func SetErrorTitle(c *gin.Context, title string) {
	c.Set(ErrorTitle, title)
}

func GetErrorTitle(c *gin.Context) string {
	if value, ok := c.Get(ErrorTitle); ok && value != nil {
		title, ok := value.(string)
		if ok {
			return title
		}
	}

	return "Error"
}
