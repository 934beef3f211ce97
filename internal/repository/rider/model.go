package rider

import "time"

type RiderDB struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	Region        string    `db:"region"`
	District      string    `db:"district"`
	Status        string    `db:"status"`
	WorkingStatus string    `db:"working_status"`
	CreatedAt     time.Time `db:"created_at"`
}
