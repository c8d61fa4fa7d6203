package model

// VoiceProfile 静态语音目录条目
// 进程启动后只读；ID 是逻辑键，VoiceID 是提供商内部的语音标识
type VoiceProfile struct {
	ID      string `json:"id"`
	VoiceID string `json:"voice_id"`
	Name    string `json:"name"`
	Accent  string `json:"accent"`
	Gender  string `json:"gender"`
}
