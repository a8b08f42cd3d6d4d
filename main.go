/*
 * Copyright 2026 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"

	sb_config_hdl "github.com/SENERGY-Platform/go-service-base/config-hdl"
	"github.com/SENERGY-Platform/go-service-base/srv-info-hdl"
	struct_logger "github.com/SENERGY-Platform/go-service-base/struct-logger"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/api"
	handler_config_store "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/config_store"
	handler_daemon "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/daemon"
	handler_device "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/device"
	handler_locales "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/locales"
	handler_logs "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/logs"
	handler_modules "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/modules"
	handler_persistence "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/persistence"
	handler_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/preferences"
	handler_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/status"
	handler_theme "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/theme"
	helper_cmd_exec "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/helper/cmd_exec"
	helper_os_signal "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/helper/os_signal"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/configuration"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/service"
)

var version string

func main() {
	ec := 0
	defer func() {
		os.Exit(ec)
	}()

	srvInfoHdl := srv_info_hdl.New("mount-manager", version)

	configuration.ParseFlags()

	config, err := configuration.New(configuration.ConfPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		ec = 1
		return
	}

	logger := struct_logger.New(config.Logger, os.Stderr, "", srvInfoHdl.Name())

	logger.Info("starting service", slog_attr.VersionKey, srvInfoHdl.Version(), slog_attr.ConfigValuesKey, sb_config_hdl.StructToMap(config, true))

	ctx, cf := context.WithCancel(context.Background())

	runner := helper_cmd_exec.New(nil)
	persistenceHdl := handler_persistence.New(0755, 0644)

	handler_config_store.InitLogger(logger)
	configStore := handler_config_store.New(persistenceHdl, config.Files.MountConfigPath)

	daemonClt := handler_daemon.New(runner, config.Daemon)

	handler_modules.InitLogger(logger)
	modulesHdl := handler_modules.New(daemonClt)

	handler_device.InitLogger(logger)
	deviceHdl := handler_device.New(runner, config.Device)

	handler_status.InitLogger(logger)
	statusHdl := handler_status.New(deviceHdl, daemonClt, modulesHdl)

	service.InitLogger(logger)
	srv := service.New(
		configStore,
		modulesHdl,
		statusHdl,
		handler_logs.New(config.Files.LogFilePath),
		handler_preferences.New(persistenceHdl, config.Files.PreferencesPath),
		handler_locales.New(config.Files.LocalesPath),
		handler_theme.New(runner),
		deviceHdl,
	)

	httpApi, err := api.New(
		srv,
		srvInfoHdl,
		logger,
		config.HttpAccessLog,
	)
	if err != nil {
		logger.Error("creating http engine failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	httpServer := &http.Server{Handler: httpApi.Handler()}
	serverListener, err := net.Listen("tcp", ":"+strconv.FormatInt(int64(config.ServerPort), 10))
	if err != nil {
		logger.Error("creating server listener failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	go func() {
		helper_os_signal.Wait(ctx, logger, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		cf()
	}()

	go srv.Init(ctx)

	wg := &sync.WaitGroup{}

	go func() {
		logger.Info("starting http server")
		if err := httpServer.Serve(serverListener); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("starting server failed", slog_attr.ErrorKey, err)
			ec = 1
		}
		cf()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("stopping http server")
		ctxWt, cf2 := context.WithTimeout(context.Background(), time.Second*5)
		defer cf2()
		if err := httpServer.Shutdown(ctxWt); err != nil {
			logger.Error("stopping server failed", slog_attr.ErrorKey, err)
			ec = 1
		} else {
			logger.Info("http server stopped")
		}
	}()

	wg.Wait()
}
