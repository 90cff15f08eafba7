package cli

import (
	"arena-scheduler-service/internal/app/drivers/database"
	"arena-scheduler-service/internal/app/drivers/logger"
	"arena-scheduler-service/internal/app/services/core/arenas"
	"arena-scheduler-service/internal/app/services/core/timesheets"
	"arena-scheduler-service/internal/app/services/shared/capability"
	"arena-scheduler-service/internal/app/services/shared/publisher"
	"arena-scheduler-service/internal/app/services/shared/redis"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/requests"
	"arena-scheduler-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type copyWeekOptions struct {
	request requests.CopyWeek
	atomic  bool
	timeout time.Duration
}

func newCopyWeekCommand(root *rootOptions) *cobra.Command {
	opts := &copyWeekOptions{}

	cmd := &cobra.Command{
		Use:   "copy-week",
		Short: "Copy one week of an arena's timesheet onto another week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopyWeek(cmd, root, opts)
		},
	}
	cmd.Flags().Int64Var(&opts.request.ArenaID, "arena", 0, "arena id")
	cmd.Flags().StringVar(&opts.request.SourceWeekStart, "begin", "", "first day of the source week, YYYY-MM-DD")
	cmd.Flags().IntVar(&opts.request.SourceWeekNo, "from-week", 0, "source ISO week number")
	cmd.Flags().IntVar(&opts.request.TargetWeekNo, "to-week", 0, "target ISO week number")
	cmd.Flags().IntVar(&opts.request.Year, "year", 0, "ISO year of the target week; defaults to the source week's year")
	cmd.Flags().BoolVar(&opts.atomic, "atomic", false, "abort and roll back on the first failed slot")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall deadline")
	cmd.MarkFlagRequired("arena")
	cmd.MarkFlagRequired("begin")
	cmd.MarkFlagRequired("from-week")
	cmd.MarkFlagRequired("to-week")
	return cmd
}

func runCopyWeek(cmd *cobra.Command, root *rootOptions, opts *copyWeekOptions) error {
	driverConfig, internalConfig, log := newCLILogger()
	if cmd.Flags().Changed("atomic") {
		internalConfig.Timesheet.CopyWeekAtomic = opts.atomic
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()
	redisClient := database.NewRedisClient(driverConfig)
	defer redisClient.Close()

	timesheetUsecase := timesheets.NewTimesheetUsecase(timesheets.TimesheetUsecaseDeps{
		TimesheetRepository: timesheets.NewTimesheetPostgresRepository(db, zapLogger),
		ArenaRepository:     arenas.NewArenaPostgresRepository(db, zapLogger),
		RedisRepository:     redis.NewRedisRepository(redisClient),
		EventPublisher:      publisher.NewLogPublisher(zapLogger),
		CapabilityChecker:   capability.NewPlanCapability(internalConfig.App.Plan),
	}, internalConfig, zapLogger)

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	log.WithFields(logrus.Fields{
		"arena_id":  opts.request.ArenaID,
		"from_week": opts.request.SourceWeekNo,
		"to_week":   opts.request.TargetWeekNo,
		"atomic":    internalConfig.Timesheet.CopyWeekAtomic,
	}).Info("Copying week")

	result, err := timesheetUsecase.CopyWeek(ctx, &opts.request)
	if err != nil {
		log.WithError(err).Error("Copy week failed")
		return err
	}

	log.WithFields(logrus.Fields{
		"copied": result.Copied,
		"failed": result.Failed,
		"delta":  result.WeekDelta,
	}).Info("Copy week finished")

	if root.asJSON {
		return printJSON(cmd, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "status=%d copied=%d failed=%d target=%s..%s\n",
		result.Status, result.Copied, result.Failed, result.WeekStart, result.WeekEnd)
	return nil
}
