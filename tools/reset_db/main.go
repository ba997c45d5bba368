package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// 本地开发辅助工具：清空并重建RV-Connect的数据表
// 服务启动时AutoMigrate会重新建表

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
}

func main() {
	// 加载配置
	config := loadConfig()

	// 构建DSN
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
		config.Database.Charset,
	)

	// 连接数据库
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("连接数据库失败: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("数据库不可达: %v", err)
	}

	// 按外键依赖的反序删表
	tables := []string{"comment", "post", "friend_request", "friendship", "user"}
	for _, table := range tables {
		if _, err := db.Exec("DROP TABLE IF EXISTS `" + table + "`"); err != nil {
			log.Fatalf("删除表 %s 失败: %v", table, err)
		}
		fmt.Printf("已删除表 %s\n", table)
	}

	fmt.Println("数据表已清空，重启服务后将自动重建")
}

func loadConfig() *Config {
	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("读取配置文件失败: %v", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}
	return &config
}
