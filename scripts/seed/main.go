// Command seed creates the database schema and loads a demo course so the
// API can be exercised locally without a production dump.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/registro-docente/api/pkg/config"
	"github.com/registro-docente/api/pkg/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS courses (
    id          UUID PRIMARY KEY,
    teacher_id  TEXT NOT NULL,
    grade       TEXT NOT NULL,
    parallel    TEXT NOT NULL,
    label       TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (teacher_id, label)
);

CREATE TABLE IF NOT EXISTS students (
    id                 UUID PRIMARY KEY,
    course_id          UUID NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
    register_number    INTEGER NOT NULL,
    full_name          TEXT NOT NULL,
    gender             TEXT NOT NULL DEFAULT '',
    ci                 TEXT NOT NULL DEFAULT '',
    rude               TEXT NOT NULL DEFAULT '',
    birth_date         DATE,
    age                INTEGER,
    tutor_name         TEXT NOT NULL DEFAULT '',
    tutor_relationship TEXT NOT NULL DEFAULT '',
    tutor_phone        TEXT NOT NULL DEFAULT '',
    status             TEXT NOT NULL DEFAULT 'ACTIVE',
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS attendance (
    id         UUID PRIMARY KEY,
    student_id UUID NOT NULL REFERENCES students (id) ON DELETE CASCADE,
    date       DATE NOT NULL,
    status     TEXT NOT NULL,
    UNIQUE (student_id, date)
);

CREATE TABLE IF NOT EXISTS grading_criteria (
    id        UUID PRIMARY KEY,
    course_id UUID NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
    trimester INTEGER NOT NULL,
    dimension TEXT NOT NULL,
    titles    TEXT[] NOT NULL DEFAULT '{}',
    UNIQUE (course_id, trimester, dimension)
);

CREATE TABLE IF NOT EXISTS student_grades (
    id         UUID PRIMARY KEY,
    student_id UUID NOT NULL REFERENCES students (id) ON DELETE CASCADE,
    trimester  INTEGER NOT NULL,
    dimension  TEXT NOT NULL,
    scores     DOUBLE PRECISION[] NOT NULL DEFAULT '{}',
    UNIQUE (student_id, trimester, dimension)
);

CREATE TABLE IF NOT EXISTS curricular_progress (
    id        UUID PRIMARY KEY,
    course_id UUID NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
    trimester INTEGER NOT NULL,
    planned   INTEGER NOT NULL DEFAULT 0,
    developed INTEGER NOT NULL DEFAULT 0,
    UNIQUE (course_id, trimester)
);

CREATE TABLE IF NOT EXISTS schedule_entries (
    id           UUID PRIMARY KEY,
    teacher_id   TEXT NOT NULL,
    day_of_week  INTEGER NOT NULL,
    start_time   TEXT NOT NULL,
    end_time     TEXT NOT NULL,
    course_label TEXT NOT NULL,
    subject      TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS institutional_data (
    teacher_id             TEXT PRIMARY KEY,
    department             TEXT NOT NULL DEFAULT '',
    district               TEXT NOT NULL DEFAULT '',
    network                TEXT NOT NULL DEFAULT '',
    sie_code               TEXT NOT NULL DEFAULT '',
    management_year        TEXT NOT NULL DEFAULT '',
    school_unit            TEXT NOT NULL DEFAULT '',
    district_director_name TEXT NOT NULL DEFAULT '',
    director_name          TEXT NOT NULL DEFAULT '',
    subject                TEXT NOT NULL DEFAULT '',
    updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	var (
		teacherID string
		withDemo  bool
	)
	flag.StringVar(&teacherID, "teacher", "demo-teacher", "teacher ID to seed data for")
	flag.BoolVar(&withDemo, "demo", true, "insert a demo course with students")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}
	log.Println("schema ready")

	if !withDemo {
		return
	}

	courseID := uuid.NewString()
	_, err = db.ExecContext(ctx, `INSERT INTO courses (id, teacher_id, grade, parallel, label)
        VALUES ($1, $2, '1RO', 'A', '1RO A')
        ON CONFLICT (teacher_id, label) DO NOTHING`, courseID, teacherID)
	if err != nil {
		log.Fatalf("failed to seed course: %v", err)
	}

	if err := db.GetContext(ctx, &courseID, `SELECT id FROM courses WHERE teacher_id = $1 AND label = '1RO A'`, teacherID); err != nil {
		log.Fatalf("failed to resolve seeded course: %v", err)
	}

	names := []string{"FLORES CONDORI ANA", "MAMANI QUISPE BRUNO", "TICONA ROJAS CARLA"}
	for i, name := range names {
		_, err := db.ExecContext(ctx, `INSERT INTO students (id, course_id, register_number, full_name, gender, status)
            VALUES ($1, $2, $3, $4, 'F', 'ACTIVE')
            ON CONFLICT (id) DO NOTHING`, uuid.NewString(), courseID, i+1, name)
		if err != nil {
			log.Fatalf("failed to seed student: %v", err)
		}
	}
	log.Printf("seeded course 1RO A with %d students for teacher %s", len(names), teacherID)
}
