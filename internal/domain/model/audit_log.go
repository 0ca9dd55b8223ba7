package model

import "time"

// 割引コードの発行・消費。
type AuditAction string

const (
	//N件目の注文で自動発行した
	AuditActionIssueRewardCode AuditAction = "ISSUE_REWARD_CODE"
	//管理者APIで発行した
	AuditActionIssueAdminCode AuditAction = "ISSUE_ADMIN_CODE"
	//checkoutで使われた
	AuditActionConsumeCode AuditAction = "CONSUME_CODE"
)

// 監査ログ。
// 「いつ」「どのコードに」「何をしたか」と、その時点の注文数を残す。
type AuditLog struct {
	//連番
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Action AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	//対象のコード
	Code string `gorm:"not null;index" json:"code"`

	//操作時点の注文数
	OrderCount int64 `gorm:"not null" json:"orderCount"`

	//checkoutで使われた場合のユーザー
	UserID string `gorm:"not null" json:"userId,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}
