package main

import (
	"database/sql"
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"time"
)

// Downloads every uploaded playthrough into a folder per user. Files are named
// after the moment the game started, with the simulation and input versions in
// the extension (e.g. 20250102-153000.tetris-1-1), so that the right executable
// can be picked to replay them.
//
// The database connection comes from TETRIS_DBUSER, TETRIS_DBPASSWORD,
// TETRIS_DBADDR and TETRIS_DBNAME, read from the environment or from a .env
// file in the current folder.

var log *zap.SugaredLogger

func main() {
	logger, err := zap.NewDevelopment()
	Check(err)
	defer func() { _ = logger.Sync() }()
	log = logger.Sugar()

	if err := godotenv.Load(); err != nil {
		log.Infow("no .env file, using the environment", "error", err)
	}

	outDir := "."
	if len(os.Args) == 2 {
		outDir = os.Args[1]
	}
	DownloadRecordings(outDir)
}

func DownloadRecordings(outDir string) {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM tetris_playthroughs " +
		"WHERE playthrough IS NOT NULL")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.user, &row.releaseVersion,
			&row.simulationVersion, &row.inputVersion, &row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	for i := range dbRows {
		dir := filepath.Join(outDir, dbRows[i].user)
		Check(os.MkdirAll(dir, 0755))
		filename := filepath.Join(dir, PlaythroughFilename(dbRows[i]))
		WriteFile(filename, dbRows[i].data)
		log.Debugw("downloaded", "file", filename, "id", dbRows[i].id.String(),
			"release", dbRows[i].releaseVersion)
	}
	log.Infow("done", "playthroughs", len(dbRows))
}

func PlaythroughFilename(row dbRow) string {
	m := row.startMoment
	return fmt.Sprintf("%d%02d%02d-%02d%02d%02d.tetris-%d-%d", m.Year(),
		m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		row.simulationVersion, row.inputVersion)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("TETRIS_DBUSER"),
		Passwd:               os.Getenv("TETRIS_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("TETRIS_DBADDR"),
		DBName:               os.Getenv("TETRIS_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
