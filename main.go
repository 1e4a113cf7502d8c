package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"beachsafe-lostandfound/conversation"
	"beachsafe-lostandfound/dao"
	"beachsafe-lostandfound/match"
	"beachsafe-lostandfound/utils"
)

type Config struct {
	Database struct {
		Path string
	}
	Matching struct {
		Threshold int
		Weights   match.Weights
	}
	Expiry struct {
		Days int
	}
	Seed string // optional JSON fixture of sample reports
	User string // acting user id for this session
}

func init() {
	viper.SetConfigName("config.yaml")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetDefault("database.path", "lostandfound.db")
	viper.SetDefault("matching.threshold", match.DefaultThreshold)
	viper.SetDefault("matching.weights.category", 20)
	viper.SetDefault("matching.weights.location", 15)
	viper.SetDefault("matching.weights.date", 15)
	viper.SetDefault("matching.weights.tag", 5)
	viper.SetDefault("matching.weights.token", 2)
	viper.SetDefault("matching.weights.window_days", 3)
	viper.SetDefault("expiry.days", dao.DefaultExpiryDays)
	viper.SetDefault("user", "local")
}

func main() {
	defer func() {
		r := recover()
		if r != nil {
			if err, ok := r.(error); ok {
				log.Println(err.Error())
			} else {
				log.Printf("%v", r)
			}
		}
	}()

	_ = godotenv.Load()
	log.Println("Loading config...")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			utils.CheckError(err, "reading config")
		}
		log.Println("No config file, using defaults")
	}
	var cfg Config
	utils.CheckError(viper.Unmarshal(&cfg), "unmarshalling config")

	store, err := dao.Open(cfg.Database.Path)
	utils.CheckError(err, "opening store")
	store.ExpiryDays = cfg.Expiry.Days

	engine := match.NewEngine(store)
	engine.Threshold = cfg.Matching.Threshold
	engine.Weights = cfg.Matching.Weights
	ledger := conversation.NewLedger(store)

	if cfg.Seed != "" {
		existing, err := store.ListAll()
		utils.CheckError(err, "checking store")
		if len(existing) == 0 {
			n, err := dao.LoadSeed(store, cfg.Seed)
			utils.CheckError(err, "seeding store")
			log.Printf("Seeded %d reports from %s", n, cfg.Seed)
		}
	}

	runLoop(store, engine, ledger, cfg.User)
}
