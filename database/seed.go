package database

import (
	"log"

	"club_cinema/config"
	"club_cinema/constants"
	"club_cinema/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultRules = "상영 시작 10분 전까지 입장해 주세요. 상영 중 촬영 및 녹음은 금지됩니다. 예약한 날짜에 오지 못할 경우 미리 취소해 주세요."
const defaultPrivacy = "입력하신 학번과 이름은 예약 확인 용도로만 사용되며 상영 종료 후 파기됩니다."

// SeedData makes sure the settings rows the app depends on exist. The admin
// password hash is seeded from ADMIN_PASSWORD on the first boot only; after
// that the stored hash wins.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(config.Config("ADMIN_PASSWORD")), 10)
	if err != nil {
		log.Println("failed to hash seed admin password:", err)
		return
	}

	settings := []model.Setting{
		{Key: constants.SettingAdminPassword, Value: string(bytes)},
		{Key: constants.SettingRules, Value: defaultRules},
		{Key: constants.SettingPrivacy, Value: defaultPrivacy},
	}

	for _, setting := range settings {
		if err := db.Where(model.Setting{Key: setting.Key}).FirstOrCreate(&setting).Error; err != nil {
			log.Println("failed to seed setting:", setting.Key, "error:", err)
		}
	}
}
