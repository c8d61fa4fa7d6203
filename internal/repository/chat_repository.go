package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TomH0011/OnlineBookingSystem/internal/model"
)

// ChatRepository 聊天数据访问
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository 创建聊天仓库
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// GetSessionWithMessages 获取会话及其全部消息，消息按创建时间升序
func (r *ChatRepository) GetSessionWithMessages(ctx context.Context, reportID string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("report_id = ?", reportID).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// AppendExchange 在一个事务内记录一次用户/AI 交换
// 会话不存在时创建（状态 ACTIVE），report_id 上的唯一索引配合
// ON CONFLICT DO NOTHING 吸收并发创建，之后按冲突后的权威行写入两条消息
func (r *ChatRepository) AppendExchange(ctx context.Context, reportID, userID, userContent, aiContent string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session model.ChatSession
		err := tx.Where("report_id = ?", reportID).First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			session = model.ChatSession{
				ID:       uuid.New().String(),
				ReportID: reportID,
				UserID:   userID,
				Status:   model.SessionStatusActive,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "report_id"}},
				DoNothing: true,
			}).Create(&session).Error; err != nil {
				return err
			}
			// 冲突时本地 session 不是库里那行，重读权威行
			if err := tx.Where("report_id = ?", reportID).First(&session).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		userMsg := model.ChatMessage{
			ID:            uuid.New().String(),
			ChatSessionID: session.ID,
			Content:       userContent,
			SenderType:    model.SenderTypeUser,
		}
		if err := tx.Create(&userMsg).Error; err != nil {
			return err
		}

		aiMsg := model.ChatMessage{
			ID:            uuid.New().String(),
			ChatSessionID: session.ID,
			Content:       aiContent,
			SenderType:    model.SenderTypeAI,
		}
		return tx.Create(&aiMsg).Error
	})
}

// UpdateSessionStatus 更新会话状态并刷新 updated_at，返回命中的行数
func (r *ChatRepository) UpdateSessionStatus(ctx context.Context, reportID, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Where("report_id = ?", reportID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// ListSessionsByUser 列出用户的全部会话，新的在前
func (r *ChatRepository) ListSessionsByUser(ctx context.Context, userID string) ([]*model.ChatSession, error) {
	var sessions []*model.ChatSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

// CountSessions 会话总数
func (r *ChatRepository) CountSessions(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.ChatSession{}).Count(&total).Error
	return total, err
}

// CountSessionsByStatus 按状态统计会话数
func (r *ChatRepository) CountSessionsByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountSessionsSince 统计指定时间之后创建的会话数
func (r *ChatRepository) CountSessionsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
