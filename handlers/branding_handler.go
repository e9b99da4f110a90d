package handlers

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"linkedin_branding/cache"
	"linkedin_branding/config"
	_ "linkedin_branding/docs" // 导入 swagger 文档
	"linkedin_branding/logger"
	"linkedin_branding/models"
	"linkedin_branding/repository"
	"linkedin_branding/services"
	"linkedin_branding/utils"
)

// BrandingHandler 品牌服务的HTTP编排层。
// 所有依赖注入进来，不通过全局变量查找，测试时可替换为桩实现
type BrandingHandler struct {
	cfg       *config.Config
	profiles  repository.ProfileRepository
	calendar  repository.CalendarRepository
	trends    cache.TrendStore
	agent     services.ContentAgent
	platform  services.PlatformClient
	dashboard *template.Template
}

func NewBrandingHandler(
	cfg *config.Config,
	profiles repository.ProfileRepository,
	calendar repository.CalendarRepository,
	trends cache.TrendStore,
	agent services.ContentAgent,
	platform services.PlatformClient,
) *BrandingHandler {
	// 仪表盘模板缺失不阻止服务启动，访问时返回错误
	tmpl, err := template.ParseFiles("templates/dashboard.html")
	if err != nil {
		logger.Warn("加载仪表盘模板失败", "error", err)
		tmpl = nil
	}

	return &BrandingHandler{
		cfg:       cfg,
		profiles:  profiles,
		calendar:  calendar,
		trends:    trends,
		agent:     agent,
		platform:  platform,
		dashboard: tmpl,
	}
}

// DashboardHandler godoc
// @Summary 仪表盘页面
// @Description 渲染服务仪表盘页面
// @Tags 仪表盘
// @Produce html
// @Success 200 {string} string "页面"
// @Router / [get]
func (h *BrandingHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	if h.dashboard == nil {
		utils.WriteErrorResponse(w, models.CodeServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.dashboard.Execute(w, nil); err != nil {
		logger.Error("渲染仪表盘页面失败", "error", err)
	}
}

// AnalyzeHandler godoc
// @Summary 分析用户档案
// @Description 调用内容代理分析档案的情感和关键词，并全量覆盖持久化用户档案
// @Tags 档案
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "档案数据"
// @Success 200 {object} models.AnalyzeResponse "成功"
// @Failure 400 {object} models.ErrorResponse "参数错误"
// @Failure 500 {object} models.ErrorResponse "服务器错误"
// @Router /api/analyze [post]
func (h *BrandingHandler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateUserID(w, req.UserID) {
		return
	}
	if req.ProfileData == nil {
		utils.WriteCustomErrorResponse(w, models.CodeMissingParams, "缺少必要参数: profile_data")
		return
	}

	// 代理内部消化提供方失败，这一步不会返回错误
	analysis := h.agent.AnalyzeProfile(r.Context(), *req.ProfileData)

	profile := &models.UserProfile{
		ID:             req.UserID,
		Bio:            req.ProfileData.Bio,
		Industry:       req.ProfileData.Industry,
		Skills:         req.ProfileData.Skills,
		Interests:      req.ProfileData.Interests,
		SentimentScore: analysis.SentimentScore,
		Keywords:       analysis.Keywords,
	}

	// 全量覆盖写入，事务保证不会留下部分档案
	if err := h.profiles.Upsert(r.Context(), profile); err != nil {
		logger.Error("持久化用户档案失败", "error", err, "user_id", req.UserID)
		utils.WriteErrorResponse(w, models.CodeDatabaseError)
		return
	}

	stored, err := h.profiles.Get(r.Context(), req.UserID)
	if err != nil {
		logger.Error("读取已持久化的用户档案失败", "error", err, "user_id", req.UserID)
		utils.WriteErrorResponse(w, models.CodeDatabaseError)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"user_profile": stored,
	})
}

// GenerateHandler godoc
// @Summary 生成推广帖子
// @Description 读取用户档案和趋势缓存，调用内容代理生成帖子。不持久化生成结果
// @Tags 内容
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "生成请求"
// @Success 200 {object} models.GenerateResponse "成功"
// @Failure 404 {object} models.ErrorResponse "档案不存在"
// @Failure 500 {object} models.ErrorResponse "服务器错误"
// @Router /api/generate [post]
func (h *BrandingHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateUserID(w, req.UserID) {
		return
	}
	if req.ContentType == "" {
		req.ContentType = "text"
	}

	profile, err := h.profiles.Get(r.Context(), req.UserID)
	if err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteErrorResponse(w, models.CodeNoUserProfile)
			return
		}
		logger.Error("读取用户档案失败", "error", err, "user_id", req.UserID)
		utils.WriteErrorResponse(w, models.CodeDatabaseError)
		return
	}

	// 缓存读取内部降级为空列表，不会让生成请求失败
	trends, _ := h.trends.GetTrends(r.Context())

	content := h.agent.GenerateContent(r.Context(), profile, req.ContentType, trends)

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"content": content,
	})
}

// ScheduleHandler godoc
// @Summary 排期并发布帖子
// @Description 写入内容日历后调用LinkedIn发布。发布失败时日历行保留，
// @Description 这是沿用原设计的已知一致性缺口，不做补偿
// @Tags 日历
// @Accept json
// @Produce json
// @Param request body models.ScheduleRequest true "排期请求"
// @Success 200 {object} models.ScheduleResponse "成功"
// @Failure 400 {object} models.ErrorResponse "参数错误"
// @Failure 500 {object} models.ErrorResponse "服务器错误"
// @Router /api/schedule [post]
func (h *BrandingHandler) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ScheduleRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateUserID(w, req.UserID) {
		return
	}
	// 必填字段校验必须先于日历写入，不完整的请求不得留下日历行
	if !utils.ValidateRequired(w, "content", req.Content) {
		return
	}
	if !utils.ValidateRequired(w, "content_type", req.ContentType) {
		return
	}
	if req.ScheduleTime.IsZero() {
		utils.WriteCustomErrorResponse(w, models.CodeMissingParams, "缺少必要参数: schedule_time")
		return
	}

	post := &models.ScheduledPost{
		UserID:       req.UserID,
		Content:      req.Content,
		ContentType:  req.ContentType,
		ScheduleTime: req.ScheduleTime,
	}

	if _, err := h.calendar.Insert(r.Context(), post); err != nil {
		logger.Error("写入内容日历失败", "error", err, "user_id", req.UserID)
		utils.WriteErrorResponse(w, models.CodeDatabaseError)
		return
	}

	result, err := h.platform.Publish(r.Context(), req.UserID, req.Content, req.ContentType)
	if err != nil {
		// 日历行已提交，发布失败只返回服务器错误
		logger.Error("发布帖子失败", "error", err, "user_id", req.UserID, "calendar_id", post.ID)
		utils.WriteErrorResponse(w, models.CodeThirdPartyAPIError)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"message": "Post scheduled successfully",
		"post_id": result.PostID,
	})
}

// AnalyticsHandler godoc
// @Summary 获取帖子分析数据
// @Description 从LinkedIn获取指定帖子的分析数据，不涉及本地持久化
// @Tags 分析
// @Produce json
// @Param post_id query string true "帖子ID"
// @Param user_id query string true "用户ID"
// @Success 200 {object} models.AnalyticsResponse "成功"
// @Failure 400 {object} models.ErrorResponse "参数错误"
// @Failure 500 {object} models.ErrorResponse "服务器错误"
// @Router /api/analytics [get]
func (h *BrandingHandler) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	if !utils.ValidateUserID(w, r.URL.Query().Get("user_id")) {
		return
	}
	postID := r.URL.Query().Get("post_id")
	if !utils.ValidateRequired(w, "post_id", postID) {
		return
	}

	analytics, err := h.platform.GetAnalytics(r.Context(), postID)
	if err != nil {
		logger.Error("获取分析数据失败", "error", err, "post_id", postID)
		utils.WriteErrorResponse(w, models.CodeThirdPartyAPIError)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"analytics": analytics,
	})
}

// CalendarHandler godoc
// @Summary 获取用户内容日历
// @Description 按创建顺序返回指定用户的全部日历条目，无数据时返回空列表
// @Tags 日历
// @Produce json
// @Param user_id query string true "用户ID"
// @Success 200 {object} models.CalendarResponse "成功"
// @Failure 400 {object} models.ErrorResponse "参数错误"
// @Failure 500 {object} models.ErrorResponse "服务器错误"
// @Router /api/calendar [get]
func (h *BrandingHandler) CalendarHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	posts, err := h.calendar.ListByUser(r.Context(), userID)
	if err != nil {
		logger.Error("读取内容日历失败", "error", err, "user_id", userID)
		utils.WriteErrorResponse(w, models.CodeDatabaseError)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"calendar": posts,
	})
}

func RegisterRoutes(r *chi.Mux, h *BrandingHandler) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/", h.DashboardHandler)

	r.Post("/api/analyze", h.AnalyzeHandler)
	r.Post("/api/generate", h.GenerateHandler)
	r.Post("/api/schedule", h.ScheduleHandler)
	r.Get("/api/analytics", h.AnalyticsHandler)
	r.Get("/api/calendar", h.CalendarHandler)
}
