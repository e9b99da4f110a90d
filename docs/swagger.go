package docs

// @title LinkedIn个人品牌服务 API
// @version 1.0
// @description 基于AI的LinkedIn档案分析、帖子生成与内容日历服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
