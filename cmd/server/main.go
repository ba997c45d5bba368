package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ctoRVC/RV-Connect/config"
	"github.com/ctoRVC/RV-Connect/internal/handler"
	"github.com/ctoRVC/RV-Connect/internal/model"
	"github.com/ctoRVC/RV-Connect/internal/repository"
	"github.com/ctoRVC/RV-Connect/internal/service"
	"github.com/ctoRVC/RV-Connect/pkg/crypto"
	dbPkg "github.com/ctoRVC/RV-Connect/pkg/db"
	"github.com/ctoRVC/RV-Connect/pkg/jwt"
	"github.com/ctoRVC/RV-Connect/pkg/logger"
	redisPkg "github.com/ctoRVC/RV-Connect/pkg/redis"
	"github.com/ctoRVC/RV-Connect/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== RV-Connect启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
		zap.String("email_domain", cfg.App.EmailDomain),
	)

	// 3. 初始化数据库连接
	if _, err := dbPkg.InitDB(cfg.Database); err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.FriendRequest{},
		&model.Friendship{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化Redis（缓存是尽力而为的，连不上只降级不退出）
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Warn("Redis连接失败，信息流缓存降级为直连数据库", zap.Error(err))
	} else {
		redisPkg.SetFeedCacheTTL(cfg.App.FeedCacheTTL)
		log.Info("Redis连接成功")
	}
	defer func() {
		if err := redisPkg.Close(); err != nil {
			log.Error("关闭Redis连接失败", zap.Error(err))
		}
	}()

	// 3.3 初始化信息流加密器
	feedKey := cfg.Crypto.FeedKey
	if feedKey == "" {
		// 未配置密钥时生成临时密钥，仅限本地开发：重启后旧密文不可再解密
		generated, err := crypto.GenerateKey()
		if err != nil {
			log.Fatal("生成信息流密钥失败", zap.Error(err))
		}
		feedKey = generated
		log.Warn("未配置FEED_ENCRYPTION_KEY，已生成临时密钥（仅限本地开发）")
	}
	feedCipher, err := crypto.NewFeedCipher(feedKey)
	if err != nil {
		log.Fatal("信息流密钥无效", zap.Error(err))
	}

	// 3.4 初始化业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	userRepo := repository.NewUserRepository(dbPkg.GetDB())
	postRepo := repository.NewPostRepository(dbPkg.GetDB())
	commentRepo := repository.NewCommentRepository(dbPkg.GetDB())
	friendRepo := repository.NewFriendRepository(dbPkg.GetDB())

	userSvc := service.NewUserService(userRepo, jwtSvc, cfg.App.EmailDomain)
	postSvc := service.NewPostService(postRepo, userRepo)
	commentSvc := service.NewCommentService(commentRepo, postRepo, userRepo)
	friendSvc := service.NewFriendService(friendRepo, userRepo)
	feedSvc := service.NewFeedService(postRepo, userRepo, feedCipher)

	userHandler := handler.NewUserHandler(userSvc)
	postHandler := handler.NewPostHandler(postSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	friendHandler := handler.NewFriendHandler(friendSvc)
	feedHandler := handler.NewFeedHandler(feedSvc)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 使用中间件
	router.Use(logger.LoggerMiddleware())      // 自定义日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // 错误日志中间件

	// 6. 设置基础路由
	setupBasicRoutes(router)

	// 6.1 绑定业务路由
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			// 公开接口（无需认证）
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)

			// 需要认证的接口
			authUsers := users.Group("")
			authUsers.Use(jwtSvc.AuthMiddleware())
			{
				authUsers.GET("/profile", userHandler.GetProfile)
				authUsers.GET("/search", userHandler.SearchUsers)
				authUsers.PUT("/me", userHandler.UpdateProfile)
				authUsers.DELETE("/me", userHandler.DeleteAccount)
				authUsers.GET("/:identifier", userHandler.GetUser)
			}
		}

		// 帖子与评论路由（需要认证）
		posts := v1.Group("/posts")
		posts.Use(jwtSvc.AuthMiddleware())
		{
			posts.POST("", postHandler.CreatePost)                          // 发帖
			posts.GET("", postHandler.ListPosts)                            // 最新帖子（<=100条）
			posts.GET("/by/:identifier", postHandler.ListPostsByAuthor)     // 按作者列帖
			posts.GET("/:post_id", postHandler.GetPost)                     // 帖子详情
			posts.PUT("/:post_id", postHandler.UpdatePost)                  // 更新帖子
			posts.DELETE("/:post_id", postHandler.DeletePost)               // 删除帖子
			posts.POST("/:post_id/comments", commentHandler.CreateComment)  // 发表评论
			posts.GET("/:post_id/comments", commentHandler.ListCommentsByPost) // 帖子评论列表
		}

		comments := v1.Group("/comments")
		comments.Use(jwtSvc.AuthMiddleware())
		{
			comments.GET("/by/:username", commentHandler.ListCommentsByCommenter) // 按用户名列评论
			comments.DELETE("/:comment_id", commentHandler.DeleteComment)         // 删除评论
		}

		// 好友关系路由（需要认证）
		friends := v1.Group("/friends")
		friends.Use(jwtSvc.AuthMiddleware())
		{
			friends.GET("", friendHandler.ListFriends)                             // 好友列表
			friends.POST("/requests", friendHandler.SendRequest)                   // 发送好友请求
			friends.GET("/requests/sent/:identifier", friendHandler.ListSent)      // 发出的请求
			friends.GET("/requests/received/:identifier", friendHandler.ListReceived) // 收到的请求
			friends.PUT("/requests/:request_id/accept", friendHandler.AcceptRequest)  // 接受
			friends.PUT("/requests/:request_id/reject", friendHandler.RejectRequest)  // 拒绝
		}

		// 公开信息流（无需认证，作者名加密返回）
		v1.GET("/feed", feedHandler.GetFeed)
	}

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 关闭HTTP服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}

// setupBasicRoutes 设置基础路由
func setupBasicRoutes(router *gin.Engine) {
	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		} else if err := redisPkg.HealthCheck(); err != nil {
			status = "cache-down"
		}
		response.Success(c, gin.H{
			"status":  status,
			"message": "RV-Connect运行状态",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// 根路径
	router.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "欢迎使用RV-Connect",
			"version": "1.0.0",
		})
	})
}
