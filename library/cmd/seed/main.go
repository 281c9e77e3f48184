package main

import (
	"context"
	"fmt"
	stdLog "log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/bookaloo/library/app"
	"github.com/Astemirdum/bookaloo/library/config"
	"github.com/Astemirdum/bookaloo/library/internal/model"
	"github.com/Astemirdum/bookaloo/library/internal/repository"
	"github.com/Astemirdum/bookaloo/library/internal/service"
	"github.com/Astemirdum/bookaloo/library/migrations"
	"github.com/Astemirdum/bookaloo/pkg/logger"
	"github.com/Astemirdum/bookaloo/pkg/postgres"
)

const (
	publishersCount = 8
	visitorsCount   = 20
)

var booksData = []struct {
	author string
	titles []string
}{
	{"J.R.R. Tolkien", []string{"The Hobbit", "The Fellowship of the Ring", "The Two Towers", "The Return of the King"}},
	{"George R.R. Martin", []string{"A Game of Thrones", "A Clash of Kings", "A Storm of Swords", "A Feast for Crows", "A Dance with Dragons"}},
	{"J.K. Rowling", []string{
		"Harry Potter and the Philosopher's Stone",
		"Harry Potter and the Chamber of Secrets",
		"Harry Potter and the Prisoner of Azkaban",
		"Harry Potter and the Goblet of Fire",
		"Harry Potter and the Order of the Phoenix",
		"Harry Potter and the Half-Blood Prince",
		"Harry Potter and the Deathly Hallows",
	}},
	{"C.S. Lewis", []string{"The Lion, the Witch and the Wardrobe", "Prince Caspian", "The Voyage of the Dawn Treader"}},
	{"Isaac Asimov", []string{"Foundation", "Foundation and Empire", "Second Foundation", "Foundation's Edge", "Foundation and Earth"}},
	{"Michael Scott", []string{"Somehow, I Manage", "100 Inspirational Quotes"}},
	{"Arthur C. Clarke", []string{"2001: A Space Odyssey", "Rendezvous with Rama", "The Fountains of Paradise", "The City and the Stars"}},
	{"Philip K. Dick", []string{"Do Androids Dream of Electric Sheep?"}},
	{"Ray Bradbury", []string{"Fahrenheit 451", "The Martian Chronicles", "Something Wicked This Way Comes"}},
	{"Jan J.L.", []string{"The day I have spent 6 hours on a recruitment task and almost got the job"}},
}

// seeder drives the service with a movable clock so that seeded loans get
// historical dates while still going through the lending rules.
type seeder struct {
	svc   *service.Service
	log   *zap.Logger
	rnd   *rand.Rand
	clock time.Time

	publishers []model.Publisher
	visitors   []model.Visitor
	isbn       int
	copyID     int
}

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, reading the environment only")
	}
	cfg := config.NewConfig(config.WithLogLevel(zapcore.InfoLevel))
	if err := run(context.Background(), cfg); err != nil {
		stdLog.Fatal("seed ", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "seed")
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	pub, err := app.NewPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer pub.Close()

	s := &seeder{
		log:   log,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		clock: time.Now().UTC(),
	}
	s.svc = service.NewService(repo, log,
		service.WithClock(func() time.Time { return s.clock }),
		service.WithLoanPeriod(cfg.Lending.LoanPeriod),
		service.WithMinDueAhead(cfg.Lending.MinDueAhead),
		service.WithPublisher(pub),
	)
	return s.seed(ctx)
}

func (s *seeder) seed(ctx context.Context) error {
	for i := 1; i <= publishersCount; i++ {
		p, err := s.svc.CreatePublisher(ctx, model.CreatePublisherRequest{
			Name:    fmt.Sprintf("Publisher %d", i),
			Address: fmt.Sprintf("%d Printing Lane", i*10),
		})
		if err != nil {
			return errors.Wrap(err, "create publisher")
		}
		s.publishers = append(s.publishers, p)
	}
	for i := 1; i <= visitorsCount; i++ {
		v, err := s.svc.CreateVisitor(ctx, model.CreateVisitorRequest{
			Identifier:  fmt.Sprintf("%06d", i),
			FullName:    fmt.Sprintf("Visitor %d", i),
			Email:       fmt.Sprintf("visitor%d@example.com", i),
			PhoneNumber: fmt.Sprintf("+48%09d", i),
		})
		if err != nil {
			return errors.Wrap(err, "create visitor")
		}
		s.visitors = append(s.visitors, v)
	}

	var books, copies, loans int
	for _, data := range booksData {
		author, err := s.svc.CreateAuthor(ctx, model.CreateAuthorRequest{FullName: data.author})
		if err != nil {
			return errors.Wrapf(err, "create author %q", data.author)
		}
		for _, title := range data.titles {
			book, err := s.svc.CreateBook(ctx, model.CreateBookRequest{Title: title, AuthorID: author.ID})
			if err != nil {
				return errors.Wrapf(err, "create book %q", title)
			}
			books++
			c, l, err := s.seedEditions(ctx, book)
			if err != nil {
				return err
			}
			copies += c
			loans += l
		}
	}
	s.log.Info("seeded",
		zap.Int("books", books),
		zap.Int("copies", copies),
		zap.Int("loans", loans))
	return nil
}

func (s *seeder) seedEditions(ctx context.Context, book model.Book) (int, int, error) {
	var copies, loans int
	editions := 1 + s.rnd.Intn(4)
	for i := 0; i < editions; i++ {
		s.isbn++
		edition, err := s.svc.CreateEdition(ctx, book.ID, model.CreateEditionRequest{
			PublisherID:     s.publishers[s.rnd.Intn(len(s.publishers))].ID,
			PublicationDate: model.NewDate(s.clock.AddDate(-s.rnd.Intn(50), -s.rnd.Intn(12), 0)),
			ISBN:            fmt.Sprintf("978%010d", s.isbn),
		})
		if err != nil {
			return copies, loans, errors.Wrapf(err, "create edition of %q", book.Title)
		}
		n := 2 + s.rnd.Intn(5)
		for j := 0; j < n; j++ {
			s.copyID++
			condition := model.Conditions[s.rnd.Intn(len(model.Conditions))]
			bookCopy, err := s.svc.CreateCopy(ctx, book.ID, edition.ID, model.CreateCopyRequest{
				Identifier: fmt.Sprintf("C%05d", s.copyID),
				Condition:  &condition,
			})
			if err != nil {
				return copies, loans, errors.Wrap(err, "create copy")
			}
			copies++
			if s.rnd.Intn(6) != 0 {
				continue
			}
			if err = s.loan(ctx, bookCopy.Identifier); err != nil {
				return copies, loans, err
			}
			loans++
		}
	}
	return copies, loans, nil
}

// loan lends the copy some time in the last 90 days and returns it before the due
// date when that date has already passed.
func (s *seeder) loan(ctx context.Context, copyIdentifier string) error {
	now := time.Now().UTC()
	defer func() { s.clock = now }()

	s.clock = now.AddDate(0, 0, -(1 + s.rnd.Intn(90)))
	loan, err := s.svc.Lend(ctx, model.LendRequest{
		BookCopyIdentifier: copyIdentifier,
		VisitorIdentifier:  s.visitors[s.rnd.Intn(len(s.visitors))].Identifier,
	})
	if err != nil {
		return errors.Wrapf(err, "lend %s", copyIdentifier)
	}
	if !loan.DueDate.Before(now) {
		return nil
	}
	s.clock = loan.DueDate.AddDate(0, 0, -(1 + s.rnd.Intn(12)))
	if _, err = s.svc.Return(ctx, model.ReturnRequest{BookCopyIdentifier: copyIdentifier}); err != nil {
		return errors.Wrapf(err, "return %s", copyIdentifier)
	}
	return nil
}
