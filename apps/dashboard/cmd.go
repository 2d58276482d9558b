package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/attendance"
	"github.com/trezcool/mahudhurio/core/class"
	"github.com/trezcool/mahudhurio/core/session"
	inmemdb "github.com/trezcool/mahudhurio/storage/inmem"
)

var (
	errMissingFlag = errors.New("missing required flag")
)

type commandLine struct {
	conf     *core.Config
	logger   core.Logger
	notifier core.Notifier
	sessSvc  *session.Service
	attSvc   *attendance.Service
	classSvc *class.Service
	prompt   *prompter
	out      io.Writer
	color    *color.Color
}

// newCommandLine wires the services over a freshly seeded roster.
func newCommandLine(conf *core.Config, logger core.Logger, notifier core.Notifier, in io.Reader, out io.Writer) (*commandLine, error) {
	db, err := inmemdb.OpenSeeded()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "opening roster")
	}
	attSvc := attendance.NewService(inmemdb.NewStudentRepository(db))

	c := color.New()
	c.SetOutput(out)
	if conf.NoColor {
		c.Disable()
	}

	return &commandLine{
		conf:     conf,
		logger:   logger,
		notifier: notifier,
		sessSvc:  session.NewService(conf),
		attSvc:   attSvc,
		classSvc: class.NewService(attSvc),
		prompt:   newPrompter(in, out),
		out:      out,
		color:    c,
	}, nil
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         cli.conf.AppName + " - attendance dashboard for students and teachers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.runDashboard()
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)
	root.Version = cli.conf.Build

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Start the interactive dashboard",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return cli.runDashboard()
			},
		},
		cli.studentCmd(),
		cli.analyticsCmd(),
		cli.overrideCmd(),
	)
	return root
}

func (cli *commandLine) studentCmd() *cobra.Command {
	var uname string
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Print the student dashboard. The password will be prompted next.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.authenticate(session.RoleStudent, uname)
			if err != nil {
				return err
			}
			st, err := cli.attSvc.StudentByRollNumber(id.RollNumber)
			if err != nil {
				return err
			}
			cli.renderStudentDashboard(st)
			return nil
		},
	}
	cmd.Flags().StringVar(&uname, "username", "", "The student's username")
	return cmd
}

func (cli *commandLine) analyticsCmd() *cobra.Command {
	var (
		uname   string
		lowOnly bool
	)
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Print the attendance of every class. The password will be prompted next.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cli.authenticate(session.RoleTeacher, uname); err != nil {
				return err
			}
			all, err := cli.attSvc.Analytics()
			if err != nil {
				return err
			}
			cli.renderAnalytics(all, lowOnly)
			return nil
		},
	}
	cmd.Flags().StringVar(&uname, "username", "", "The teacher's username")
	cmd.Flags().BoolVar(&lowOnly, "low", false, "Only list students below the attendance requirement")
	return cmd
}

func (cli *commandLine) overrideCmd() *cobra.Command {
	var uname, roll, subject, date, status string
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Override one day of a student's attendance and print the new figures. Nothing is saved.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if roll == "" || subject == "" || date == "" || status == "" {
				_ = cmd.Usage()
				return errMissingFlag
			}
			st, err := attendance.ParseStatus(status)
			if err != nil {
				return err
			}
			if _, err = cli.authenticate(session.RoleTeacher, uname); err != nil {
				return err
			}
			student, err := cli.attSvc.StudentByRollNumber(roll)
			if err != nil {
				return err
			}
			sa, ok := student.Attendance(subject)
			if !ok {
				if _, err := cli.attSvc.Subject(subject); err != nil {
					return err
				}
				return attendance.ErrNotEnrolled
			}
			before := sa.Summary()
			_, after, err := cli.attSvc.OverrideAttendance(student.ID, subject, date, st)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cli.out, "%s (%s) - %s on %s: %s\n", student.Name, student.RollNumber, sa.Subject, date, st.Title())
			_, _ = fmt.Fprintf(cli.out, "before: %s\nafter:  %s\n", cli.summaryLine(before), cli.summaryLine(after))
			return nil
		},
	}
	cmd.Flags().StringVar(&uname, "username", "", "The teacher's username")
	cmd.Flags().StringVar(&roll, "roll", "", "The student's roll number")
	cmd.Flags().StringVar(&subject, "subject", "", "The subject name")
	cmd.Flags().StringVar(&date, "date", "", "The class date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "present or absent")
	return cmd
}

// authenticate prompts for the password of `uname` and logs in with `role`.
func (cli *commandLine) authenticate(role session.Role, uname string) (session.Identity, error) {
	if uname == "" {
		return session.Identity{}, errMissingFlag
	}
	pwd, err := cli.prompt.ReadPassword("Enter password:")
	if err != nil && err != io.EOF {
		return session.Identity{}, err
	}
	id, err := cli.sessSvc.Login(session.LoginForm{Role: role.String(), Username: uname, Password: pwd})
	if err != nil {
		return session.Identity{}, err
	}
	cli.logger.Info(fmt.Sprintf("%s logged in", id.Username), id)
	return id, nil
}

func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	if len(args) > 0 {
		args = args[1:] // program name
	} else {
		args = []string{}
	}
	root.SetArgs(args)
	return root.Execute()
}
