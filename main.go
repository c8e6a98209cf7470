package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	op := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	op.Start()
	defer op.Stop()

	svc := service.NewService(dbStorage, op)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
