package voice

import "github.com/TomH0011/OnlineBookingSystem/internal/model"

// defaultVoiceKey 未指定语音时使用的目录键
const defaultVoiceKey = "male_british_1"

// britishVoices 静态英音目录，进程启动后只读
// 顺序固定，/voices 的返回顺序与此一致
var britishVoices = []model.VoiceProfile{
	{
		ID:      "male_british_1",
		VoiceID: "pNInz6obpgDQGcFmaJgB",
		Name:    "Adam",
		Accent:  "British",
		Gender:  "Male",
	},
	{
		ID:      "male_british_2",
		VoiceID: "EXAVITQu4vr4xnSDxMaL",
		Name:    "Bella",
		Accent:  "British",
		Gender:  "Female",
	},
	{
		ID:      "female_british_1",
		VoiceID: "VR6AewLTigWG4xSOukaG",
		Name:    "Arnold",
		Accent:  "British",
		Gender:  "Male",
	},
	{
		ID:      "female_british_2",
		VoiceID: "AZnzlk1XvdvUeBnXmlld",
		Name:    "Domi",
		Accent:  "British",
		Gender:  "Female",
	},
}

// lookupVoice 按目录键查找
func lookupVoice(key string) (model.VoiceProfile, bool) {
	for _, profile := range britishVoices {
		if profile.ID == key {
			return profile, true
		}
	}
	return model.VoiceProfile{}, false
}

// defaultVoice 返回默认英音
// accent 目前只有 british 一种目录，其他取值同样落到默认语音
func defaultVoice() model.VoiceProfile {
	profile, _ := lookupVoice(defaultVoiceKey)
	return profile
}
