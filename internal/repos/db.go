package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (catalog/lookups/schedules/quizzes)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Authors
CREATE TABLE IF NOT EXISTS authors(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  name_ar TEXT NOT NULL DEFAULT '',
  bio TEXT NOT NULL DEFAULT '',
  birth_year INTEGER NOT NULL DEFAULT 0,
  country TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  specialization TEXT NOT NULL DEFAULT '',
  awards_json TEXT NOT NULL DEFAULT '[]',
  website TEXT NOT NULL DEFAULT '',
  book_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_authors_name ON authors(LOWER(name));

-- Categories (one level of nesting via parent_id)
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  name_ar TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  icon TEXT NOT NULL DEFAULT '',
  featured INTEGER NOT NULL DEFAULT 0,
  popular INTEGER NOT NULL DEFAULT 0,
  parent_id TEXT NULL REFERENCES categories(id) ON DELETE SET NULL,
  book_count INTEGER NOT NULL DEFAULT 0,
  subcategory_count INTEGER NOT NULL DEFAULT 0,
  tags_json TEXT NOT NULL DEFAULT '[]',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Publishers and filter lookups
CREATE TABLE IF NOT EXISTS publishers(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  country TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS product_types(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS grades(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  level INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS subjects(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

-- Books
CREATE TABLE IF NOT EXISTS books(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  title_ar TEXT NOT NULL DEFAULT '',
  author_id TEXT NOT NULL REFERENCES authors(id) ON DELETE RESTRICT,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  publisher_id TEXT NOT NULL DEFAULT '' ,
  price NUMERIC NOT NULL CHECK (price >= 0),
  stock_qty INTEGER NOT NULL DEFAULT 0 CHECK (stock_qty >= 0),
  available INTEGER NOT NULL DEFAULT 1,
  featured INTEGER NOT NULL DEFAULT 0,
  new_release INTEGER NOT NULL DEFAULT 0,
  cover_url TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_books_category   ON books(category_id);
CREATE INDEX IF NOT EXISTS idx_books_author     ON books(author_id);
CREATE INDEX IF NOT EXISTS idx_books_title      ON books(LOWER(title));
CREATE INDEX IF NOT EXISTS idx_books_created_at ON books(created_at);

-- Non-book study materials (stationery, packs)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  product_type_id TEXT NOT NULL REFERENCES product_types(id) ON DELETE RESTRICT,
  grade_id TEXT NOT NULL DEFAULT '',
  subject_id TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  stock_qty INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_type ON products(product_type_id);

-- Study-tips / success-guide content
CREATE TABLE IF NOT EXISTS study_materials(
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL CHECK (kind IN ('tip','guide')),
  title TEXT NOT NULL,
  title_ar TEXT NOT NULL DEFAULT '',
  body TEXT NOT NULL DEFAULT '',
  position INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_study_materials_kind ON study_materials(kind, position);

-- Study calendar
CREATE TABLE IF NOT EXISTS schedules(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL CHECK (type IN ('exams','calendar','projects','review')),
  date TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'upcoming' CHECK (status IN ('active','upcoming')),
  downloadable INTEGER NOT NULL DEFAULT 0,
  file_url TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_schedules_date ON schedules(date);

-- Quizzes
CREATE TABLE IF NOT EXISTS quizzes(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  subject_id TEXT NOT NULL DEFAULT '',
  grade_id TEXT NOT NULL DEFAULT '',
  duration_minutes INTEGER NOT NULL DEFAULT 15,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS quiz_questions(
  id TEXT PRIMARY KEY,
  quiz_id TEXT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  prompt TEXT NOT NULL,
  options_json TEXT NOT NULL,
  correct_index INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quiz_questions_quiz ON quiz_questions(quiz_id, position);
CREATE TABLE IF NOT EXISTS quiz_attempts(
  id TEXT PRIMARY KEY,
  quiz_id TEXT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
  session_id TEXT NOT NULL,
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  score INTEGER NOT NULL,
  total INTEGER NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_quiz_attempts_session ON quiz_attempts(session_id);

-- Inquiries (best-effort records of WhatsApp contact requests)
CREATE TABLE IF NOT EXISTS inquiries(
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  book_id TEXT NOT NULL DEFAULT '',
  message TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries(created_at);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog/schedules/quizzes")

	tx := db.MustBegin()

	tx.MustExec(`INSERT INTO categories(id,name,name_ar,description,icon,featured,popular,tags_json) VALUES
	  ('tawjihi','Tawjihi','التوجيهي','Final-year exam preparation','graduation-cap',1,1,'["exams","grade-12"]'),
	  ('languages','Languages','اللغات','Arabic and English language books','language',1,0,'["arabic","english"]'),
	  ('sciences','Sciences','العلوم','Math, physics, chemistry and biology','flask',0,1,'["math","physics"]'),
	  ('literature','Literature','الأدب','Novels and poetry collections','book-open',0,0,'[]')`)
	tx.MustExec(`INSERT INTO categories(id,name,name_ar,parent_id) VALUES
	  ('tawjihi-science','Tawjihi Scientific','التوجيهي العلمي','tawjihi'),
	  ('tawjihi-literary','Tawjihi Literary','التوجيهي الأدبي','tawjihi')`)
	tx.MustExec(`UPDATE categories SET subcategory_count=2 WHERE id='tawjihi'`)

	tx.MustExec(`INSERT INTO authors(id,name,name_ar,bio,birth_year,country,city,specialization,awards_json,website) VALUES
	  ('a-khalidi','Omar Al-Khalidi','عمر الخالدي','Mathematics teacher and author of Tawjihi prep series.',1975,'Jordan','Amman','Mathematics','["Best STEM Author 2019"]','https://example.com/khalidi'),
	  ('a-haddad','Rana Haddad','رنا حداد','English-language curriculum writer.',1982,'Jordan','Irbid','English','[]',''),
	  ('a-nabulsi','Samir Nabulsi','سمير النابلسي','Physics educator; former examiner.',1968,'Jordan','Amman','Physics','["Ministry Excellence Award"]','')`)

	tx.MustExec(`INSERT INTO publishers(id,name,country) VALUES
	  ('p-dar-alfikr','Dar Al-Fikr','Jordan'),
	  ('p-royal','Royal Study Press','Jordan')`)

	tx.MustExec(`INSERT INTO product_types(id,name) VALUES
	  ('pt-book','Book'),('pt-pack','Past-Paper Pack'),('pt-stationery','Stationery')`)
	tx.MustExec(`INSERT INTO grades(id,name,level) VALUES
	  ('g-10','Grade 10',10),('g-11','Grade 11',11),('g-12','Tawjihi',12)`)
	tx.MustExec(`INSERT INTO subjects(id,name) VALUES
	  ('s-math','Mathematics'),('s-phys','Physics'),('s-eng','English'),('s-ar','Arabic')`)

	tx.MustExec(`INSERT INTO books(id,title,title_ar,author_id,category_id,publisher_id,price,stock_qty,available,featured,new_release,cover_url,description) VALUES
	  ('b-math12','Tawjihi Mathematics','رياضيات التوجيهي','a-khalidi','tawjihi-science','p-royal',12.50,20,1,1,0,'/media/covers/b-math12.jpg','Complete Tawjihi math course with solved past papers.'),
	  ('b-phys12','Tawjihi Physics','فيزياء التوجيهي','a-nabulsi','tawjihi-science','p-royal',11.00,3,1,1,1,'/media/covers/b-phys12.jpg','Physics summaries and exam drills.'),
	  ('b-eng12','English Mastery','إتقان الإنجليزية','a-haddad','languages','p-dar-alfikr',9.75,0,0,0,0,'/media/covers/b-eng12.jpg','Grammar and writing guide for grade 12.'),
	  ('b-ar-lit','Arabic Literature Reader','مختارات الأدب العربي','a-haddad','literature','p-dar-alfikr',8.00,12,1,0,1,'/media/covers/b-ar-lit.jpg','Curated poems and prose.')`)
	tx.MustExec(`UPDATE authors SET book_count=(SELECT COUNT(*) FROM books WHERE books.author_id=authors.id)`)
	tx.MustExec(`UPDATE categories SET book_count=(SELECT COUNT(*) FROM books WHERE books.category_id=categories.id)`)

	tx.MustExec(`INSERT INTO products(id,product_type_id,grade_id,subject_id,title,price,stock_qty) VALUES
	  ('pr-pack-math','pt-pack','g-12','s-math','Math Past Papers 2019-2025',5.00,30),
	  ('pr-planner','pt-stationery','','','Royal Study Planner',3.50,50)`)

	tx.MustExec(`INSERT INTO study_materials(id,kind,title,title_ar,body,position) VALUES
	  ('sm-tip-1','tip','Plan your week','خطط أسبوعك','Block fixed revision slots before school assignments.',1),
	  ('sm-tip-2','tip','Active recall','الاسترجاع النشط','Close the book and write what you remember.',2),
	  ('sm-guide-1','guide','Month before the exam','قبل الامتحان بشهر','Switch from learning to past-paper practice.',1),
	  ('sm-guide-2','guide','Exam day','يوم الامتحان','Arrive early; read every question twice.',2)`)

	tx.MustExec(`INSERT INTO schedules(id,title,description,type,date,status,downloadable,file_url) VALUES
	  ('sch-exams-1','جدول امتحانات الشهر الأول','First monthly exam timetable','exams','2026-10-05','upcoming',1,'/media/files/exams-m1.pdf'),
	  ('sch-term-2','رزنامة الفصل الدراسي الثاني','Second-term study calendar','calendar','2027-02-01','upcoming',1,'/media/files/term2.pdf'),
	  ('sch-review-1','مراجعة الرياضيات','Weekly math review session','review','2026-09-10','active',0,'')`)

	tx.MustExec(`INSERT INTO quizzes(id,title,subject_id,grade_id,duration_minutes) VALUES
	  ('q-math-01','Derivatives warm-up','s-math','g-12',15),
	  ('q-eng-01','Tenses check','s-eng','g-11',10)`)
	tx.MustExec(`INSERT INTO quiz_questions(id,quiz_id,position,prompt,options_json,correct_index) VALUES
	  ('qq-m1','q-math-01',1,'d/dx of x^2 is','["x","2x","x^2","2"]',1),
	  ('qq-m2','q-math-01',2,'d/dx of sin(x) is','["cos(x)","-cos(x)","sin(x)","-sin(x)"]',0),
	  ('qq-e1','q-eng-01',1,'She ___ to school every day.','["go","goes","going","gone"]',1)`)

	return tx.Commit()
}

// seedUsers ensures a demo USER and one ADMIN exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-layla", "layla@royalstudy.test", "Layla", "USER", "Passw0rd!"),
		mk("u-admin", "admin@royalstudy.test", "Admin", "ADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
