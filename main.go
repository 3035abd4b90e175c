package main

import (
	"flag"
	"log"
	"strings"

	"saldo/config"
	"saldo/database"
	"saldo/router"
	"saldo/service"
)

// @title Saldo 个人记账 API
// @version 1.0
// @description 个人记账系统 API，支持消费类别、消费记录筛选分页、仪表盘、理财预测与 CSV/Excel 导出
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	testEmail   string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.StringVar(&testEmail, "test-email", "", "发送一封测试邮件到指定地址后退出")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Saldo v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	cfg.Print()

	if testEmail != "" {
		if err := service.NewEmailService(&cfg.Email).SendTestEmail(testEmail); err != nil {
			log.Fatalf("测试邮件发送失败: %v", err)
		}
		log.Printf("测试邮件已发送至 %s", testEmail)
		return
	}

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	r := router.SetupRouter(cfg, db)

	log.Printf("==========================================")
	log.Printf("  Saldo 记账服务已启动")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
