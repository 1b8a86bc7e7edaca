// token 为运维人员签发管理员JWT
//
//	go run ./cmd/token -subject ops@example.com -ttl 12h
//	go run ./cmd/token -config ./config/config.prod.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-inventory/pkg/jwt"
)

func main() {
	var (
		configPath = flag.String("config", "", "配置文件路径（默认按BOOKSTORE_ENV查找config目录）")
		subject    = flag.String("subject", "admin", "操作人标识，写入sub")
		ttl        = flag.Duration("ttl", 0, "有效期（默认使用jwt.token_ttl）")
	)
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("加载配置失败")
	}

	tokenTTL := cfg.JWT.TokenTTL
	if *ttl > 0 {
		tokenTTL = *ttl
	}

	manager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, tokenTTL)
	token, expiresAt, err := manager.GenerateToken(*subject, middleware.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("签发Token失败")
	}

	log.Info().
		Str("subject", *subject).
		Str("expires_at", expiresAt.Format(time.RFC3339)).
		Msg("Token签发成功")
	fmt.Println(token)
}
