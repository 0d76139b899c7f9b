package models

import "time"

// Subscription is a (follower, following) edge between users.
// follower != following is enforced in the service layer.
type Subscription struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Associations
	Follower  *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE;" json:"follower,omitempty"`
	Following *User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE;" json:"following,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
