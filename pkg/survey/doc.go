// Package survey sends Net Promoter Score survey emails.
//
// A Dispatcher walks an ordered list of Recipients, renders the survey
// template for each one, hands the Message to the Transport registered for
// the requested Channel and folds every Outcome into a BatchResult.
//
//	source := mailer.NewFSSource(os.DirFS("."), mailer.DefaultTemplateName)
//	d := survey.NewDispatcher(source, cfg,
//		survey.WithTransport(survey.ChannelSMTP,
//			survey.NewSenderTransport(survey.ChannelSMTP, smtpSender,
//				survey.WithTextFunc(survey.LongText))),
//		survey.WithLogger(log),
//	)
//	result, err := d.SendBatch(ctx, recipients, survey.ChannelSMTP)
//
// Sends are strictly sequential. After each attempt the Pacer decides how
// long to wait; FixedDelay(time.Second) is the default and NoDelay suits tests.
//
// Transports never fail the batch. SenderTransport converts provider errors
// and panics into failed outcomes, so one bad address does not stop the rest.
// Only a template that cannot be loaded, or a cancelled context, ends a batch
// early.
package survey
