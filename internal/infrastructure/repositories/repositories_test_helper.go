package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		uid TEXT UNIQUE NOT NULL,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		kyc_completed BOOLEAN NOT NULL DEFAULT 0,
		kyc_status TEXT NOT NULL DEFAULT 'pending',
		kyc_reviewed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAdminTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admins (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createKycProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL,
		id_number TEXT NOT NULL,
		nic_front_image TEXT NOT NULL,
		nic_back_image TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createBrokerAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE broker_accounts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		broker TEXT NOT NULL,
		account_type TEXT NOT NULL,
		account_number TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createBotTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		cost REAL NOT NULL,
		subscription_fee REAL NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBotAssignmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bot_assignments (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		broker_account_id TEXT NOT NULL,
		bot_id TEXT NOT NULL,
		signed_agreement_url TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
